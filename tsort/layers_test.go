package tsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/internal/fixture"
	"github.com/katalvlaran/depsort/tsort"
)

// TestLayers_Scenarios checks stage grouping on the reference inputs.
func TestLayers_Scenarios(t *testing.T) {
	t.Run("chain", func(t *testing.T) {
		g := mustGraph(t, []int{1, 2, 3, 4, 5}, [][2]int{{5, 4}, {4, 3}, {3, 2}, {2, 1}})
		stages, err := tsort.Layers(g)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{5}, {4}, {3}, {2}, {1}}, stages)
	})
	t.Run("forest", func(t *testing.T) {
		g := mustGraph(t, []int{1, 2, 3, 4, 5}, [][2]int{{5, 4}, {2, 3}, {1, 5}})
		stages, err := tsort.Layers(g)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3, 5}, {4}}, stages)
	})
	t.Run("strings", func(t *testing.T) {
		g := mustGraph(t, []string{"a", "b", "c", "d"}, [][2]string{{"a", "c"}, {"c", "b"}})
		stages, err := tsort.Layers(g)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "d"}, {"c"}, {"b"}}, stages)
	})
	t.Run("no edges", func(t *testing.T) {
		g := mustGraph(t, []string{"c", "a", "b"}, nil)
		stages, err := tsort.Layers(g)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"c", "a", "b"}}, stages)
	})
	t.Run("empty", func(t *testing.T) {
		stages, err := tsort.Layers(mustGraph[int](t, nil, nil))
		require.NoError(t, err)
		assert.Empty(t, stages)
	})
}

// TestLayers_Cycle reports the same cycle FindCycle sees.
func TestLayers_Cycle(t *testing.T) {
	g := mustGraph(t, []int{1, 2, 3, 4, 5}, [][2]int{{5, 4}, {4, 3}, {3, 2}, {2, 1}, {2, 3}})

	stages, err := tsort.Layers(g)
	assert.Nil(t, stages)
	var ce *tsort.CyclicGraphError[int]
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []int{3, 2, 3}, ce.Cycle)
	assert.Equal(t, tsort.Edge[int]{Parent: 2, Child: 3}, ce.Edge)
}

// TestLayers_FlattenIsValidOrder flattens stages of random DAGs and verifies them.
func TestLayers_FlattenIsValidOrder(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		items, pairs := fixture.RandomDAG(30, 0.2, fixture.WithSeed(seed))
		g := mustGraph(t, items, pairs)

		stages, err := tsort.Layers(g)
		require.NoError(t, err)
		var flat []string
		for _, s := range stages {
			require.NotEmpty(t, s)
			flat = append(flat, s...)
		}
		assert.NoError(t, tsort.Verify(flat, g), "seed %d", seed)
	}
}

// TestLayers_NilGraph verifies ErrGraphNil.
func TestLayers_NilGraph(t *testing.T) {
	_, err := tsort.Layers[int](nil)
	assert.ErrorIs(t, err, tsort.ErrGraphNil)
}
