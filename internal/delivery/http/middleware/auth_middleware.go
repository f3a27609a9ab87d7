package middleware

import (
	"context"
	"net/http"
	"strings"

	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"
	"medcare-booking/pkg/jwt"
	"medcare-booking/pkg/response"
)

type contextKey string

const (
	SessionKey contextKey = "session"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// The token only names the session; logging out clears the slot
		session := m.sessionRepo.FindByID(r.Context(), claims.SessionID)
		if session == nil {
			response.Unauthorized(w, "Session has ended")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession attaches the authenticated session to ctx
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSessionFromContext extracts the session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return "", false
	}
	return session.User.ID, true
}

// GetRoleFromContext extracts role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return "", false
	}
	return session.User.Role, true
}
