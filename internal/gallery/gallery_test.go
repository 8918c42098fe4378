package gallery_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/lumina-api/internal/domain"
	"github.com/phrazzld/lumina-api/internal/gallery"
	"github.com/phrazzld/lumina-api/internal/mocks"
	"github.com/phrazzld/lumina-api/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type blockingAcquirer struct {
	started   atomic.Int32
	cancelled atomic.Int32
}

func (b *blockingAcquirer) Acquire(ctx context.Context, req pipeline.Request) (string, error) {
	b.started.Add(1)
	<-ctx.Done()
	b.cancelled.Add(1)
	return "", ctx.Err()
}

func items(n int, prefix string) []domain.GreetingItem {
	out := make([]domain.GreetingItem, n)
	for i := range out {
		out[i] = domain.GreetingItem{Text: fmt.Sprintf("%s greeting %d", prefix, i), Context: "SMS"}
	}
	return out
}

func TestGallery_ReplaceCreatesIndexedCards(t *testing.T) {
	t.Parallel()

	acq := &blockingAcquirer{}
	g := gallery.New(setupTestLogger(), acq)
	defer g.Close()

	g.Replace(context.Background(), items(5, "first"), domain.DefaultParams())

	require.Equal(t, 5, g.Len())
	states := g.States()
	for i, s := range states {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, domain.CardPhaseLoading, s.Phase)
	}

	_, err := g.Card(5)
	assert.ErrorIs(t, err, gallery.ErrCardNotFound)
	_, err = g.Card(-1)
	assert.ErrorIs(t, err, gallery.ErrCardNotFound)
}

func TestGallery_ReplaceTearsDownPreviousSet(t *testing.T) {
	t.Parallel()

	acq := &blockingAcquirer{}
	g := gallery.New(setupTestLogger(), acq)
	defer g.Close()

	ctx := context.Background()
	g.Replace(ctx, items(3, "same"), domain.DefaultParams())
	old, err := g.Card(0)
	require.NoError(t, err)

	g.Replace(ctx, items(3, "same"), domain.DefaultParams())
	old.Wait()

	require.Eventually(t, func() bool { return acq.cancelled.Load() == 3 }, time.Second, 5*time.Millisecond)
	fresh, err := g.Card(0)
	require.NoError(t, err)
	assert.NotSame(t, old, fresh, "identical text still yields a fresh card")
}

func TestGallery_EmptySet(t *testing.T) {
	t.Parallel()

	g := gallery.New(setupTestLogger(), &blockingAcquirer{})
	g.Replace(context.Background(), nil, domain.DefaultParams())

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.States())
	g.Close()
}

func TestGallery_FiveCardsStaggerWithPipeline(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockImageGeneratorWithImage(mocks.SampleImage)
	p, err := pipeline.New(setupTestLogger(), gen, pipeline.Policy{
		StaggerStep:   20 * time.Millisecond,
		BackoffBase:   10 * time.Millisecond,
		BackoffFactor: 3,
		MaxRetries:    2,
	})
	require.NoError(t, err)

	g := gallery.New(setupTestLogger(), p)
	defer g.Close()

	start := time.Now()
	g.Replace(context.Background(), items(5, "stagger"), domain.DefaultParams())

	require.Eventually(t, func() bool {
		for _, s := range g.States() {
			if s.Phase != domain.CardPhaseReady {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)

	calls := gen.CallTimes()
	require.Len(t, calls, 5)
	last := calls[len(calls)-1]
	assert.GreaterOrEqual(t, last.Sub(start), 80*time.Millisecond, "index 4 waits 4 stagger steps")
}
