package devicetree

import (
	"fmt"
	"slices"
)

// Kind is the type of a storage device.
type Kind string

const (
	KindDisk          Kind = "disk"
	KindPartition     Kind = "partition"
	KindVolumeGroup   Kind = "lvmvg"
	KindLogicalVolume Kind = "lvmlv"
	KindRAID          Kind = "mdarray"
	KindLUKS          Kind = "luks"
	KindBTRFS         Kind = "btrfs"
)

var knownKinds = map[Kind]bool{
	KindDisk:          true,
	KindPartition:     true,
	KindVolumeGroup:   true,
	KindLogicalVolume: true,
	KindRAID:          true,
	KindLUKS:          true,
	KindBTRFS:         true,
}

// Device is one node of the storage stack.
type Device struct {
	Name    string
	Kind    Kind
	Parents []string // devices this one is built on
	Size    int64    // current size in MiB; resize actions compare against it
}

// Tree is an ordered collection of devices. Parents must be added before
// their children, which keeps the tree acyclic by construction.
type Tree struct {
	devices  []*Device
	byName   map[string]*Device
	children map[string][]string
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{
		byName:   make(map[string]*Device),
		children: make(map[string][]string),
	}
}

// AddDevice appends d to the tree.
func (t *Tree) AddDevice(d *Device) error {
	if d == nil || d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDevice)
	}
	if !knownKinds[d.Kind] {
		return fmt.Errorf("%w: %s has unknown kind %q", ErrInvalidDevice, d.Name, d.Kind)
	}
	if _, ok := t.byName[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDevice, d.Name)
	}
	for _, p := range d.Parents {
		if _, ok := t.byName[p]; !ok {
			return fmt.Errorf("%w: %s (parent of %s)", ErrUnknownDevice, p, d.Name)
		}
	}

	t.devices = append(t.devices, d)
	t.byName[d.Name] = d
	for _, p := range d.Parents {
		t.children[p] = append(t.children[p], d.Name)
	}

	return nil
}

// Device looks up a device by name.
func (t *Tree) Device(name string) (*Device, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Devices returns the devices in insertion order.
func (t *Tree) Devices() []*Device {
	return slices.Clone(t.devices)
}

// Children returns the devices built directly on name.
func (t *Tree) Children(name string) []string {
	return slices.Clone(t.children[name])
}

// Ancestors returns every device name is built on, nearest first.
func (t *Tree) Ancestors(name string) []string {
	d, ok := t.byName[name]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	queue := slices.Clone(d.Parents)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		queue = append(queue, t.byName[n].Parents...)
	}

	return out
}

// DependsOn reports whether device a is built, directly or not, on device b.
// A device does not depend on itself.
func (t *Tree) DependsOn(a, b string) bool {
	if a == b {
		return false
	}

	return slices.Contains(t.Ancestors(a), b)
}

// siblings reports whether a and b are distinct partitions sharing a parent.
func (t *Tree) siblings(a, b string) bool {
	if a == b {
		return false
	}
	da, okA := t.byName[a]
	db, okB := t.byName[b]
	if !okA || !okB || da.Kind != KindPartition || db.Kind != KindPartition {
		return false
	}
	for _, p := range da.Parents {
		if slices.Contains(db.Parents, p) {
			return true
		}
	}

	return false
}
