package middleware

import (
	"context"
	"errors"
	"net/http"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// trustedKey marks requests authenticated by the internal API key.
type trustedKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole guards the /v1 routes. Chain order is APIKey, Auth, RBAC.
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

var tokenErrorMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

func tokenErrorMessage(err error) string {
	for _, known := range tokenErrorMessages {
		if errors.Is(err, known.err) {
			return known.message
		}
	}

	return "Token validation failed"
}

func trusted(r *http.Request) bool {
	ok, _ := r.Context().Value(trustedKey{}).(bool)

	return ok
}

// route resolves the chi pattern the request will be dispatched to.
func route(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}

func (m *authRoleImpl) rule(r *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(route(r), r.Method)
}

func reject(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

// Auth turns the bearer access token into user values on the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		if trusted(request) || m.rule(request).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       route(request),
			"http.method":     request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Warn().Str("token_id", claims.TokenID).Msg("Access token without subject")
			reject(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the role placed by Auth against the route's allowed roles.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		switch {
		case trusted(request):
		case m.permission == nil:
			reject(writer, scope, failure.ForbiddenError)

			return
		case m.permission.Skip:
		default:
			rule := m.rule(request)
			role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

			if !rule.Allows(role) {
				scope.SetAttributes(map[string]any{
					"user_role":     role,
					"allowed_roles": rule.Permissions,
				})
				reject(writer, scope, failure.ForbiddenError)

				return
			}
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers holding APP_API_KEY bypass token checks.
// Requests without the header continue as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || key != m.cfg.App.APIKey {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, trustedKey{}, true)))
	})
}
