package planfile_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/devicetree"
	"github.com/katalvlaran/depsort/planfile"
	"github.com/katalvlaran/depsort/tsort"
)

func TestLoadGraphFile(t *testing.T) {
	g, err := planfile.LoadGraphFile("testdata/graph.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Items())
	order, err := tsort.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, order)
}

func TestLoadGraph_Errors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		target error
	}{
		{"empty", "", planfile.ErrDecode},
		{"unknown key", "items: [a]\nnodes: [b]\n", planfile.ErrDecode},
		{"bad pair", "items: [a, b]\nedges: [[a, b, c]]\n", planfile.ErrDecode},
		{"unknown item", "items: [a]\nedges: [[a, z]]\n", planfile.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planfile.LoadGraph(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestLoadGraph_UnknownItemKeepsTsortError(t *testing.T) {
	_, err := planfile.LoadGraph(strings.NewReader("items: [a]\nedges: [[a, z]]\n"))
	assert.ErrorIs(t, err, tsort.ErrInvalidEdge)

	var ie *tsort.InvalidEdgeError[string]
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "z", ie.Missing)
}

func TestLoadGraphFile_Missing(t *testing.T) {
	_, err := planfile.LoadGraphFile("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestLoadPlanFile(t *testing.T) {
	p, err := planfile.LoadPlanFile("testdata/install.yaml")
	require.NoError(t, err)

	assert.Len(t, p.Tree.Devices(), 5)
	require.Len(t, p.Actions, 7)
	assert.Equal(t, "[1] create format ext4 on root", p.Actions[0].String())
	assert.Equal(t, 7, p.Actions[6].ID)

	ordered, err := devicetree.NewPlanner(p.Tree).Plan(context.Background(), p.Actions)
	require.NoError(t, err)
	got := make([]int, len(ordered))
	for i, a := range ordered {
		got[i] = a.ID
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 6, 7}, got)
}

func TestLoadPlan_ExplicitIDsAndAfter(t *testing.T) {
	doc := `
devices:
  - {name: vda, kind: DISK, size: 10000}
actions:
  - {id: 10, type: resize, object: device, device: vda, size: 20000, after: [20]}
  - {id: 20, type: Destroy, object: format, device: vda}
`
	p, err := planfile.LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)

	d, ok := p.Tree.Device("vda")
	require.True(t, ok)
	assert.Equal(t, devicetree.KindDisk, d.Kind)

	assert.Equal(t, 10, p.Actions[0].ID)
	assert.Equal(t, []int{20}, p.Actions[0].After)
	assert.Equal(t, devicetree.ActionDestroy, p.Actions[1].Type)
	assert.Equal(t, int64(20000), p.Actions[0].Size)
}

func TestLoadPlan_Errors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		target error
	}{
		{"not yaml", "devices: [", planfile.ErrDecode},
		{"unknown key", "devices: []\nsteps: []\n", planfile.ErrDecode},
		{"unknown kind", "devices: [{name: x, kind: tape}]\n", devicetree.ErrInvalidDevice},
		{"unknown parent", "devices: [{name: x1, kind: partition, parents: [x]}]\n", devicetree.ErrUnknownDevice},
		{"duplicate device", "devices: [{name: x, kind: disk}, {name: x, kind: disk}]\n", devicetree.ErrDuplicateDevice},
		{"bad action type", "devices: [{name: x, kind: disk}]\nactions: [{type: wipe, object: device, device: x}]\n", devicetree.ErrInvalidAction},
		{"bad object", "devices: [{name: x, kind: disk}]\nactions: [{type: create, object: label, device: x}]\n", devicetree.ErrInvalidAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := planfile.LoadPlan(strings.NewReader(tc.input))
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.target)
			if tc.target != planfile.ErrDecode {
				assert.ErrorIs(t, err, planfile.ErrInvalid)
			}
		})
	}
}
