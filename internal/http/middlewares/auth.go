package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/maikeru-desu/genius-todolist/internal/errors"
	model "github.com/maikeru-desu/genius-todolist/internal/models"
	repository "github.com/maikeru-desu/genius-todolist/internal/repositories"
	"github.com/maikeru-desu/genius-todolist/internal/sessions"
)

const userContextKey = "authenticated_user"

// CurrentUser returns the actor resolved by Auth. Nil only on routes that
// skipped the middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// Auth resolves the bearer token to a user and stores it in the request
// context. Requests without a valid session are rejected with 401.
func Auth(store sessions.Store, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return apperrors.ErrUnauthorized
			}

			ctx := c.Request().Context()

			userID, err := store.Lookup(ctx, token)
			if err != nil {
				if errors.Is(err, sessions.ErrSessionNotFound) {
					return apperrors.ErrUnauthorized
				}
				return err
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return apperrors.ErrUnauthorized
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
