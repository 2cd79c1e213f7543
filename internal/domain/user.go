package domain

import (
	"context"
	"time"
)

// User is an authenticated principal.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserWithProfile is the /users/me view: the user plus whichever role profile exists.
type UserWithProfile struct {
	User
	JobSeekerProfile *JobSeeker `json:"job_seeker_profile,omitempty"`
	RecruiterProfile *Recruiter `json:"recruiter_profile,omitempty"`
}

// AccessToken is returned by a successful login.
type AccessToken struct {
	Message     string    `json:"message"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Delete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (*AccessToken, error)
	GetCurrentUser(ctx context.Context, email string) (*UserWithProfile, error)
	DeleteAccount(ctx context.Context, email string) error
}
