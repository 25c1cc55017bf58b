package router

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
)

// middlewareAuthentication admits a request only when it carries a valid bearer
// token. A missing token is answered with 401 and a rejected one with 403; in
// both cases next is never called.
func middlewareAuthentication(verifier jwt.JWT, public map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, ok := public[r.Method]; ok {
				if _, skip := s[matchedRoutePath(r)]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			token, ok := jwt.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeJSON(w, errorResponse{Message: jwt.MessageMissingToken}, http.StatusUnauthorized)
				return
			}

			if verifier == nil {
				writeJSON(w, errorResponse{Message: jwt.MessageInvalidToken}, http.StatusForbidden)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				slog.DebugContext(r.Context(), "bearer token rejected", "error", err)
				writeJSON(w, errorResponse{Message: jwt.MessageInvalidToken}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(r.Context(), claims)))
		})
	}
}
