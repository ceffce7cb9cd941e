package charts

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/2beens/gymdash/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRenderer tracks which instances are alive and fails if two instances
// for the same canvas ever coexist.
type fakeRenderer struct {
	mu         sync.Mutex
	live       map[string]int
	renders    int
	overlapped bool
	failWith   error
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{live: make(map[string]int)}
}

func (r *fakeRenderer) Render(canvas string, _ Config) (Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.live[canvas] > 0 {
		r.overlapped = true
	}
	r.live[canvas]++
	r.renders++
	return &fakeInstance{canvas: canvas, renderer: r}, nil
}

func (r *fakeRenderer) liveCount(canvas string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[canvas]
}

type fakeInstance struct {
	canvas    string
	renderer  *fakeRenderer
	destroyed bool
}

func (i *fakeInstance) Canvas() string { return i.canvas }

func (i *fakeInstance) Destroy() error {
	if i.destroyed {
		return fmt.Errorf("instance %s destroyed twice", i.canvas)
	}
	i.destroyed = true
	i.renderer.mu.Lock()
	defer i.renderer.mu.Unlock()
	i.renderer.live[i.canvas]--
	return nil
}

func TestRegistry_UpdateDestroysPrevious(t *testing.T) {
	renderer := newFakeRenderer()
	metricsManager := metrics.NewTestManager()
	registry := NewRegistry(renderer, metricsManager)

	cfg := Config{Kind: KindBar, Labels: []string{"1 Jan"}, Datasets: []Dataset{{Data: []float64{1}}}}
	for i := 0; i < 3; i++ {
		for _, canvas := range Canvases {
			require.NoError(t, registry.Update(canvas, cfg))
		}
	}

	assert.False(t, renderer.overlapped)
	assert.Equal(t, 12, renderer.renders)
	for _, canvas := range Canvases {
		assert.Equal(t, 1, renderer.liveCount(canvas))
		_, ok := registry.Get(canvas)
		assert.True(t, ok)
	}
	assert.Len(t, registry.Live(), 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(metricsManager.GaugeLiveCharts))
	assert.Equal(t, 3.0, testutil.ToFloat64(metricsManager.CounterChartRenders.WithLabelValues(CanvasVolume)))

	require.NoError(t, registry.Close())
	assert.Empty(t, registry.Live())
	for _, canvas := range Canvases {
		assert.Zero(t, renderer.liveCount(canvas))
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(metricsManager.GaugeLiveCharts))
}

func TestRegistry_RenderError(t *testing.T) {
	renderer := newFakeRenderer()
	registry := NewRegistry(renderer, nil)

	cfg := Config{Kind: KindLine}
	require.NoError(t, registry.Update(CanvasSets, cfg))

	renderer.failWith = errors.New("boom")
	err := registry.Update(CanvasSets, cfg)
	require.ErrorIs(t, err, renderer.failWith)

	// the previous instance is gone even though the new one failed
	_, ok := registry.Get(CanvasSets)
	assert.False(t, ok)
	assert.Zero(t, renderer.liveCount(CanvasSets))
}

func TestRegistry_ConcurrentUpdates(t *testing.T) {
	renderer := newFakeRenderer()
	registry := NewRegistry(renderer, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.Update(CanvasWorkouts, Config{})
		}()
	}
	wg.Wait()

	assert.False(t, renderer.overlapped)
	assert.Equal(t, 1, renderer.liveCount(CanvasWorkouts))
	require.NoError(t, registry.Close())
}
