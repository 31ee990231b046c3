package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookie_bets_placed_total",
		Help: "Bets accepted and persisted as OPEN.",
	})
	BetsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookie_bets_rejected_total",
		Help: "Bet placements rejected, by reason.",
	}, []string{"reason"})
	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookie_bets_settled_total",
		Help: "Bets moved to a terminal state, by result.",
	}, []string{"result"})
	SettlementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookie_settlement_failures_total",
		Help: "Per-bet settlement failures inside a market batch.",
	})
	FundingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookie_funding_decisions_total",
		Help: "Deposit/withdrawal decisions applied, by kind and decision.",
	}, []string{"kind", "decision"})
	ReconcileMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookie_reconcile_mismatches_total",
		Help: "Accounts whose recomputed invariants disagreed with stored values.",
	})
)

type HealthFunc func(ctx context.Context) error

// StartServer serves /metrics and /healthz on a dedicated port so the
// wagering API port stays clean. Runs in its own goroutine.
func StartServer(port string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()

		if err := healthFn(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}
