package handler

import (
	"log/slog"
	"net/http"

	"github.com/mtlprog/dailysales/internal/config"
	"github.com/mtlprog/dailysales/internal/middleware"
)

// NewRouter builds the full HTTP handler: routes wrapped in recovery,
// request logging and the CORS policy. CORS is outermost so that its
// headers reach every response, including 404s and recovered panics.
func NewRouter(cfg config.Config, policy middleware.CORSPolicy, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	New(cfg).RegisterRoutes(mux)

	return middleware.Chain(mux,
		policy.Handler,
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)
}
