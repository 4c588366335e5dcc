package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/domain"
	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/logging"
)

const headerAgentID = "X-Agent-ID"

// agentIDKey is the context key for storing the calling agent.
type agentIDKey struct{}

// WithAgentID returns a new context carrying the calling agent's id.
func WithAgentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, agentIDKey{}, id)
}

// AgentIDFromContext extracts the calling agent's id from the context.
// Returns an empty string if none is stored.
func AgentIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(agentIDKey{}).(string); ok {
		return id
	}
	return ""
}

// AgentID returns middleware that requires an X-Agent-ID header and stores
// the agent in the request context. The header is trusted as-is; verifying
// credentials is left to the gateway in front of this service. Requests
// without it are answered 403.
//
// The request-scoped logger, if any, gains an agent_id attribute.
func AgentID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(headerAgentID))
			if id == "" {
				dto.WriteErrorResponse(w, r, fmt.Errorf("missing %s header: %w", headerAgentID, domain.ErrForbidden))
				return
			}
			ctx := WithAgentID(r.Context(), id)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("agent_id", id)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
