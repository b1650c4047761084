package tsort_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/internal/fixture"
	"github.com/katalvlaran/depsort/tsort"
)

// TestSort_ConcurrentCallsShareGraph sorts one graph from many goroutines;
// every call must see the same result. Run with -race.
func TestSort_ConcurrentCallsShareGraph(t *testing.T) {
	items, pairs := fixture.RandomDAG(200, 0.05, fixture.WithSeed(42))
	g := mustGraph(t, items, pairs)
	want, err := tsort.Sort(g)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	results := make([][]string, workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = tsort.Sort(g)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		assert.NoError(t, errs[w])
		assert.Equal(t, want, results[w], "worker %d", w)
	}
}
