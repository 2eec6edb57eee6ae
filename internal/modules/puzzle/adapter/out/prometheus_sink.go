package out

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"wirematch/internal/modules/puzzle/domain"
	puzzleout "wirematch/internal/modules/puzzle/port/out"
)

type PrometheusSink struct {
	events    *prometheus.CounterVec
	advanced  prometheus.Counter
	level     prometheus.Gauge
	highScore prometheus.Gauge
}

// NewPrometheusSink registers the game collectors on reg.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	s := &PrometheusSink{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wirematch_events_total",
				Help: "Game events by kind.",
			},
			[]string{"kind"},
		),
		advanced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wirematch_levels_advanced_total",
			Help: "Levels completed and advanced past.",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wirematch_current_level",
			Help: "Level currently on the board.",
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wirematch_high_score",
			Help: "Highest level ever reached.",
		}),
	}
	for _, c := range []prometheus.Collector{s.events, s.advanced, s.level, s.highScore} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

var _ puzzleout.EventSink = (*PrometheusSink)(nil)

func (s *PrometheusSink) Publish(_ context.Context, event domain.Event) {
	s.events.WithLabelValues(string(event.Kind)).Inc()
	if event.Kind == domain.EventLevelAdvanced {
		s.advanced.Inc()
	}
	if event.Level > 0 {
		s.level.Set(float64(event.Level))
	}
	s.highScore.Set(float64(event.HighScore))
}
