package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/metrics"
	"github.com/clynicx/portal-service/internal/core/ports"
	"github.com/clynicx/portal-service/internal/core/services"
)

// loadingRetryAfter is the Retry-After value, in seconds, sent while the
// session backend cannot be read.
const loadingRetryAfter = "1"

// Gate binds every request to its origin's session slot and applies the
// routing policy to portal pages.
type Gate struct {
	slots   ports.SlotStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewGate(slots ports.SlotStore, m *metrics.Metrics, logger *zap.Logger) *Gate {
	return &Gate{slots: slots, metrics: m, logger: logger}
}

// Handler must run inside Origin.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		originID := OriginIDFrom(r.Context())
		store := services.NewSessionStore(g.slots, originID, g.logger)
		ctx := WithSession(r.Context(), store)

		if !services.IsManaged(r.URL.Path) {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		state, err := services.ResolveState(ctx, store)
		if err != nil {
			g.logger.Warn("session backend unavailable",
				zap.String("origin_id", originID),
				zap.Error(err),
			)
		}

		decision := services.Decide(state, r.URL.Path)
		g.metrics.GateDecision(decision.Outcome.String(), decision.Reason)

		switch decision.Outcome {
		case services.OutcomeLoading:
			writeLoading(w)
		case services.OutcomeRedirect:
			g.logger.Debug("gate redirect",
				zap.String("path", r.URL.Path),
				zap.String("location", decision.Location),
				zap.String("reason", decision.Reason),
				zap.String("state", state.Phase.String()),
			)
			location := decision.Location
			if decision.Reason == services.ReasonNonCanonical && r.URL.RawQuery != "" {
				location += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, location, http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r.WithContext(WithGateState(ctx, state)))
		}
	})
}

func writeLoading(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", loadingRetryAfter)
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"state":   services.PhaseLoading.String(),
		"message": "Loading session, please retry",
	})
}
