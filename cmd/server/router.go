package main

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// server holds everything the HTTP router mounts.
type server struct {
	auth        protoconnect.AuthServiceHandler
	groups      protoconnect.GroupServiceHandler
	settlements protoconnect.SettlementServiceHandler
	expenses    protoconnect.ExpenseServiceHandler

	jwtManager     *auth.JWTManager
	metrics        *metrics.Metrics
	metricsHandler http.Handler
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	// Outermost first; auth rejections are still logged and counted.
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(s.metrics),
		middleware.RequireAuth(s.jwtManager, service.PublicProcedures),
	)
	r.Mount(protoconnect.NewAuthServiceHandler(s.auth, interceptors))
	r.Mount(protoconnect.NewGroupServiceHandler(s.groups, interceptors))
	r.Mount(protoconnect.NewSettlementServiceHandler(s.settlements, interceptors))
	r.Mount(protoconnect.NewExpenseServiceHandler(s.expenses, interceptors))

	return r
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, Error-Code, Error-Field")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
