package tui

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-ballpark/internal/engine"
)

var (
	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ballpark_sessions_active",
		Help: "Number of connected SSH players",
	})

	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ballpark_games_started_total",
		Help: "Total number of games that reached the first pitch",
	})

	gamesFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ballpark_games_finished_total",
		Help: "Total number of games played to the final out",
	})

	plateAppearances = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ballpark_plate_appearances_total",
		Help: "Total number of finished plate appearances by outcome",
	}, []string{"outcome"})
)

// ObserveEvent updates the game metrics for one event.
func ObserveEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.GameStartEvent:
		gamesStarted.Inc()
	case engine.FinalScoreEvent:
		gamesFinished.Inc()
	case engine.PlateAppearanceEvent:
		plateAppearances.WithLabelValues(outcomeLabel(e)).Inc()
	}
}

// outcomeLabel turns "Home run" into "home_run".
func outcomeLabel(e engine.PlateAppearanceEvent) string {
	return strings.ReplaceAll(strings.ToLower(e.Outcome.String()), " ", "_")
}

// MetricsRouter serves /metrics and a liveness probe.
func MetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return r
}
