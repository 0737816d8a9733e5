package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/httputil"
)

type contextKey string

var (
	requestIDKContextKey = contextKey("Request-ID")
	loggerContextKey     = contextKey("Logger")
	usernameContextKey   = contextKey("Username")
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(
			slog.String("from", r.RemoteAddr),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if username := GetUsernameFromContext(r); username != "" {
			logger = logger.With(slog.String("user", username))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware requires a valid bearer token. It lets everything through
// when no account is configured.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authService == nil || !s.authService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Signature and expiry are checked while parsing
		claims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			return
		}
		ctx := context.WithValue(r.Context(), usernameContextKey, claims.Username)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

// GetUsernameFromContext returns the authenticated account name. Empty when
// authentication is disabled.
func GetUsernameFromContext(r *http.Request) string {
	username, _ := r.Context().Value(usernameContextKey).(string)
	return username
}
