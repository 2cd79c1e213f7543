package usecase

import (
	"context"
	"errors"
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// principals re-resolves the authenticated email on every call; the gate only
// forwards the identity, never the user row.
type principals struct {
	users domain.UserRepository
}

func (p principals) resolve(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, apperror.Unauthorized("Not authenticated")
	}
	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, notFoundOr(err, "User not found.")
	}
	return user, nil
}

// notFoundOr maps a repository miss to a 404 with msg and anything else to a 500.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return apperror.Internal(err)
}

func validateStruct(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		return apperror.New(http.StatusBadRequest, validation.Message(err), err)
	}
	return nil
}
