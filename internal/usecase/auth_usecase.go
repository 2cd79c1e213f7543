package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/logger"
)

// TokenIssuer signs access tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// AuthEvents receives account lifecycle signals for metrics.
type AuthEvents interface {
	RecordRegistration(role string)
	RecordLoginFailure()
}

type authUsecase struct {
	principals
	seekerRepo    domain.JobSeekerRepository
	recruiterRepo domain.RecruiterRepository
	tokens        TokenIssuer
	events        AuthEvents
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	seekerRepo domain.JobSeekerRepository,
	recruiterRepo domain.RecruiterRepository,
	tokens TokenIssuer,
	events AuthEvents,
) domain.AuthUsecase {
	return &authUsecase{
		principals:    principals{users: userRepo},
		seekerRepo:    seekerRepo,
		recruiterRepo: recruiterRepo,
		tokens:        tokens,
		events:        events,
	}
}

func (u *authUsecase) Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !role.Valid() {
		return nil, apperror.BadRequest("Role must be one of: Job Seeker, Recruiter")
	}
	if err := auth.ValidatePasswordLength(password); err != nil {
		return nil, apperror.BadRequest("Password must be at most 72 bytes")
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperror.Conflict("Email already registered")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Email:          email,
		HashedPassword: hash,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, apperror.Internal(err)
	}

	if u.events != nil {
		u.events.RecordRegistration(role.String())
	}
	logger.Get().Info().Int64("user_id", user.ID).Str("role", role.String()).Msg("user registered")
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	// Same response for unknown email and wrong password
	if user == nil || !auth.CheckPassword(user.HashedPassword, password) {
		if u.events != nil {
			u.events.RecordLoginFailure()
		}
		return nil, apperror.Unauthorized("Incorrect username or password")
	}

	token, expiresAt, err := u.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AccessToken{
		Message:     "Login successful!",
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, email string) (*domain.UserWithProfile, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	out := &domain.UserWithProfile{User: *user}
	switch user.Role {
	case domain.RoleJobSeeker:
		seeker, err := u.seekerRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		out.JobSeekerProfile = seeker
	case domain.RoleRecruiter:
		rec, err := u.recruiterRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		out.RecruiterProfile = rec
	}
	return out, nil
}

func (u *authUsecase) DeleteAccount(ctx context.Context, email string) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	if err := u.users.Delete(ctx, user.ID); err != nil {
		return notFoundOr(err, "User not found.")
	}
	logger.Get().Info().Int64("user_id", user.ID).Msg("user account deleted")
	return nil
}
