// Package api exposes the transfer engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	port_persistence "github.com/james-ap-sunny/interbank-transfers/internal/ports/gateway/persistence"
	port_accounts "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/account"
	port_transfer "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/transfer"
)

type RouterParams struct {
	Transfers port_transfer.TransferUseCase
	Accounts  port_accounts.AccountReader
	Source    port_persistence.Store
	Dest      port_persistence.Store
	Registry  *prometheus.Registry
	Log       *zap.Logger
}

func NewRouter(p RouterParams) http.Handler {
	if p.Log == nil {
		p.Log = zap.NewNop()
	}

	transfers := NewTransferHandler(p.Transfers, p.Log)
	accounts := NewAccountHandler(p.Accounts, p.Log)
	health := NewHealthHandler(p.Source, p.Dest, p.Log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(p.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", health.Check)
	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", transfers.Create)
			r.Post("/validate", transfers.Validate)
			r.Get("/{transferID}", transfers.Status)
			r.Get("/history/{accountNo}", transfers.History)
		})
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/{accountNo}", accounts.Info)
			r.Get("/{accountNo}/history", accounts.History)
		})
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
