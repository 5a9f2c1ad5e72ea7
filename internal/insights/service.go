package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
	"github.com/rdmartins/drilltrack-backend/pkg/metrics"
)

// Fixed user-facing texts. The service never returns an error to its caller:
// either a real analysis or one of these.
const (
	FallbackMessage = "Erro ao conectar com a IA para análise preditiva."
	EmptyMessage    = "Não foi possível gerar a análise no momento."
)

// Service turns an inventory snapshot into a short natural-language report.
type Service interface {
	Analyze(ctx context.Context, state inventory.State) string
}

type service struct {
	generator TextGenerator
	breaker   *gobreaker.CircuitBreaker
	metrics   *metrics.InsightMetrics
	logg      *logger.Logger
}

// NewService wires the text generator behind a circuit breaker so a flapping
// upstream fails fast instead of holding every request for the full timeout.
func NewService(generator TextGenerator, insightMetrics *metrics.InsightMetrics, logg *logger.Logger) (Service, error) {
	if generator == nil {
		return nil, fmt.Errorf("text generator required")
	}

	s := &service{
		generator: generator,
		metrics:   insightMetrics,
		logg:      logg,
	}

	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.metrics.SetBreakerState(breakerStateValue(to))
			if s.logg != nil {
				ctx := s.logg.WithFields(context.Background(), map[string]any{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				})
				s.logg.Warn(ctx, "insight.breaker.state_changed")
			}
		},
	})

	return s, nil
}

// Analyze builds the prompt from the snapshot and asks the generator. Any
// failure, including an open breaker, resolves to the fixed fallback text;
// the snapshot itself is never touched.
func (s *service) Analyze(ctx context.Context, state inventory.State) string {
	prompt := BuildPrompt(state)

	result, err := s.breaker.Execute(func() (any, error) {
		return s.generator.Generate(ctx, prompt)
	})
	if err != nil {
		s.metrics.IncFailure()
		s.metrics.IncFallback()
		if s.logg != nil {
			s.logg.Error(ctx, "insight.generate.failed", err)
		}
		return FallbackMessage
	}

	text, _ := result.(string)
	if text == "" {
		s.metrics.IncSuccess()
		s.metrics.IncFallback()
		return EmptyMessage
	}

	s.metrics.IncSuccess()
	return text
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
