package v1handler

import (
	"context"
	"crypto/rsa"
	"idverify/internal/config"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/serrors"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key under which the authenticated user ID is stored.
const UserIDKey ctxKey = "userID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions builds SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests with RS256 bearer tokens whose subject
// is the user ID.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewSecHandler parses the configured public key.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse RSA public key")
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth validates token and returns ctx carrying the user ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	ctx = logger.WithFields(ctx, zap.Stringer("user_id", userID))

	return context.WithValue(ctx, UserIDKey, userID), nil
}

// Middleware rejects requests without a valid Authorization bearer token.
func (s *SecHandler) Middleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
			if err != nil {
				h.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user, or the zero UserID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
