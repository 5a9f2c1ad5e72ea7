package insights

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
	"github.com/rdmartins/drilltrack-backend/pkg/metrics"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestService(t *testing.T, gen TextGenerator) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	svc, err := NewService(gen, metrics.NewInsightMetrics(nil), logg)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresGenerator(t *testing.T) {
	_, err := NewService(nil, nil, nil)
	require.Error(t, err)
}

func TestAnalyzeReturnsGeneratedText(t *testing.T) {
	gen := &stubGenerator{text: "Bits T45 em nível crítico."}
	svc := newTestService(t, gen)

	got := svc.Analyze(context.Background(), inventory.State{})
	require.Equal(t, "Bits T45 em nível crítico.", got)
	require.Equal(t, 1, gen.calls)
}

func TestAnalyzeEmptyTextFallsBackToEmptyMessage(t *testing.T) {
	svc := newTestService(t, &stubGenerator{text: ""})

	got := svc.Analyze(context.Background(), inventory.State{})
	require.Equal(t, EmptyMessage, got)
}

func TestAnalyzeFailureReturnsFallbackAndLeavesStateUntouched(t *testing.T) {
	svc := newTestService(t, &stubGenerator{err: errors.New("connection refused")})

	store := inventory.NewStore(inventory.SeedItems())
	before := store.Snapshot()

	got := svc.Analyze(context.Background(), store.Snapshot())
	require.Equal(t, FallbackMessage, got)

	require.True(t, reflect.DeepEqual(before, store.Snapshot()), "analysis must never mutate inventory state")
}

func TestAnalyzeBreakerOpensAfterRepeatedFailures(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	svc := newTestService(t, gen)

	for i := 0; i < 10; i++ {
		got := svc.Analyze(context.Background(), inventory.State{})
		require.Equal(t, FallbackMessage, got)
	}

	// Once the breaker opens, calls short-circuit without reaching the
	// generator, yet the caller still sees the same fallback.
	require.Less(t, gen.calls, 10)
}
