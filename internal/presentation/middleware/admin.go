package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"tgimg/internal/domain/dto"
	"tgimg/internal/presentation"
)

const DefaultAdminPrefix = "/admin"

// IsAdmin reports whether the request was sent from an admin page of this
// same host. The Referer header is client controlled, so this only keeps
// honest browsers out.
func IsAdmin(req *http.Request, prefix string) bool {
	if prefix == "" {
		prefix = DefaultAdminPrefix
	}

	referer := req.Header.Get(presentation.RefererKey)
	if referer == "" {
		return false
	}

	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return false
	}

	if !strings.EqualFold(u.Host, req.Host) {
		return false
	}

	return strings.HasPrefix(u.Path, prefix)
}

// DetectAdmin stores the admin flag on the context for handlers that only
// relax checks for administrators.
func DetectAdmin(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(presentation.AdminKey, IsAdmin(ctx.Request(), prefix))

			return next(ctx)
		}
	}
}

func RequireAdmin(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !IsAdmin(ctx.Request(), prefix) {
				ctx.Response().Header().Set(presentation.ReasonTag, "admin referer required")

				return ctx.JSON(http.StatusForbidden, dto.StatusResponse{
					Success: false,
					Message: "Forbidden",
				})
			}

			ctx.Set(presentation.AdminKey, true)

			return next(ctx)
		}
	}
}

// AdminFrom reads the flag set by DetectAdmin or RequireAdmin.
func AdminFrom(ctx echo.Context) bool {
	admin, _ := ctx.Get(presentation.AdminKey).(bool)

	return admin
}
