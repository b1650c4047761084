// Package planfile reads YAML descriptions of dependency graphs and of
// storage plans.
//
// A graph document lists items and [parent, child] pairs:
//
//	items: [sda, sda1, vg0]
//	edges:
//	  - [sda, sda1]
//	  - [sda1, vg0]
//
// A plan document describes a device tree and the actions to order on it:
//
//	devices:
//	  - {name: sda, kind: disk, size: 100000}
//	  - {name: sda1, kind: partition, parents: [sda], size: 1000}
//	actions:
//	  - {type: create, object: format, device: sda1, format: xfs}
//	  - {type: create, object: device, device: sda1}
//
// Actions without an id are numbered by their position, starting at 1.
// Unknown keys are rejected. Malformed YAML wraps ErrDecode; documents that
// parse but do not describe a valid graph or plan wrap ErrInvalid.
package planfile
