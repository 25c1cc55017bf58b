package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
)

type IntrospectInput struct {
	// Authorization is the raw header value.
	Authorization string
}

// Introspect decodes the bearer token and returns its claims.
func (s *Usecase) Introspect(ctx context.Context, in IntrospectInput) (*jwt.Claims, error) {
	ctx, span := s.startSpan(ctx, "Introspect")
	defer span.End()

	token, ok := jwt.BearerToken(in.Authorization)
	if !ok {
		return nil, goerror.NewUnauthorized(jwt.MessageMissingToken)
	}

	claims, err := s.jwt.Verify(token)
	if err != nil {
		slog.DebugContext(ctx, "introspect token rejected", "error", err)
		return nil, goerror.NewForbidden(jwt.MessageInvalidToken)
	}

	return &claims, nil
}
