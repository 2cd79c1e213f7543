package middleware

import (
	"errors"
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth demands a valid bearer token on routes the gate's policy table
// does not cover, such as /users/me. The role is not checked.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := UserEmail(c); email != "" {
			c.Next()
			return
		}

		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithAppError(c, apperror.Unauthorized("Not authenticated"))
			return
		}

		email, err := verifier.Subject(token)
		if err != nil {
			msg := "Could not validate credentials"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token has expired"
			}
			abortWithAppError(c, apperror.New(http.StatusUnauthorized, msg, err))
			return
		}

		c.Set(string(domain.KeyUserEmail), email)
		c.Next()
	}
}
