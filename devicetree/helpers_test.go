package devicetree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsort/devicetree"
)

// newTestTree builds:
//
//	sda (disk)
//	├── sda1 (partition, 1000 MiB)
//	├── sda2 (partition, 50000 MiB)
//	│   └── vg0 (lvmvg)
//	│       ├── root (lvmlv)
//	│       └── home (lvmlv)
//	└── sda3 (partition, 2000 MiB)
func newTestTree(t *testing.T) *devicetree.Tree {
	t.Helper()
	tree := devicetree.NewTree()
	for _, d := range []*devicetree.Device{
		{Name: "sda", Kind: devicetree.KindDisk, Size: 100000},
		{Name: "sda1", Kind: devicetree.KindPartition, Parents: []string{"sda"}, Size: 1000},
		{Name: "sda2", Kind: devicetree.KindPartition, Parents: []string{"sda"}, Size: 50000},
		{Name: "vg0", Kind: devicetree.KindVolumeGroup, Parents: []string{"sda2"}, Size: 49996},
		{Name: "root", Kind: devicetree.KindLogicalVolume, Parents: []string{"vg0"}, Size: 20000},
		{Name: "home", Kind: devicetree.KindLogicalVolume, Parents: []string{"vg0"}, Size: 20000},
		{Name: "sda3", Kind: devicetree.KindPartition, Parents: []string{"sda"}, Size: 2000},
	} {
		require.NoError(t, tree.AddDevice(d))
	}

	return tree
}

func createDevice(id int, dev string) *devicetree.Action {
	return &devicetree.Action{ID: id, Type: devicetree.ActionCreate, Object: devicetree.ObjectDevice, Device: dev}
}

func createFormat(id int, dev, format string) *devicetree.Action {
	return &devicetree.Action{ID: id, Type: devicetree.ActionCreate, Object: devicetree.ObjectFormat, Device: dev, Format: format}
}

func destroyDevice(id int, dev string) *devicetree.Action {
	return &devicetree.Action{ID: id, Type: devicetree.ActionDestroy, Object: devicetree.ObjectDevice, Device: dev}
}

func destroyFormat(id int, dev string) *devicetree.Action {
	return &devicetree.Action{ID: id, Type: devicetree.ActionDestroy, Object: devicetree.ObjectFormat, Device: dev}
}

func resize(id int, obj devicetree.ObjectType, dev string, size int64) *devicetree.Action {
	return &devicetree.Action{ID: id, Type: devicetree.ActionResize, Object: obj, Device: dev, Size: size}
}

func ids(actions []*devicetree.Action) []int {
	out := make([]int, len(actions))
	for i, a := range actions {
		out[i] = a.ID
	}

	return out
}
