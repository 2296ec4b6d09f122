package middleware

import (
	"context"
	"net/http"

	"pawsit/infras/jwt"
	"pawsit/permissions"
	"pawsit/shared/constant"
	"pawsit/shared/failure"
	"pawsit/transport/http/response"
)

// Authenticate validates the bearer token and stores the identity claims on
// the request context. Tokens are issued by the external identity provider;
// this service only consumes them.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			response.WithError(w, failure.Unauthorized("missing or malformed authorization header"))

			return
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			response.WithError(w, failure.Unauthorized("invalid or expired token"))

			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission gates a route on the caller's role policy.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

			if !permissions.HasPermission(role, permission) {
				response.WithError(w, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return id
}

// UserRole returns the authenticated user role from the request context.
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}
