package devicetree

import (
	"fmt"
	"strings"
)

// ActionType is what an action does.
type ActionType uint8

const (
	ActionCreate ActionType = iota + 1
	ActionDestroy
	ActionResize
)

// String returns the lowercase name used in plan files.
func (t ActionType) String() string {
	switch t {
	case ActionCreate:
		return "create"
	case ActionDestroy:
		return "destroy"
	case ActionResize:
		return "resize"
	default:
		return fmt.Sprintf("action(%d)", uint8(t))
	}
}

// ParseActionType converts "create", "destroy" or "resize" (any case).
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(s) {
	case "create":
		return ActionCreate, nil
	case "destroy":
		return ActionDestroy, nil
	case "resize":
		return ActionResize, nil
	}

	return 0, fmt.Errorf("%w: unknown action type %q", ErrInvalidAction, s)
}

// ObjectType is what an action operates on.
type ObjectType uint8

const (
	ObjectDevice ObjectType = iota + 1
	ObjectFormat
)

func (o ObjectType) String() string {
	switch o {
	case ObjectDevice:
		return "device"
	case ObjectFormat:
		return "format"
	default:
		return fmt.Sprintf("object(%d)", uint8(o))
	}
}

// ParseObjectType converts "device" or "format" (any case).
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(s) {
	case "device":
		return ObjectDevice, nil
	case "format":
		return ObjectFormat, nil
	}

	return 0, fmt.Errorf("%w: unknown object type %q", ErrInvalidAction, s)
}

// Action is one storage configuration step.
type Action struct {
	// ID identifies the action within a plan; IDs must be unique.
	ID     int
	Type   ActionType
	Object ObjectType
	// Device is the name of the device acted on.
	Device string
	// Format names the format type for format actions (e.g. "ext4", "lvmpv").
	Format string
	// Size is the target size in MiB for resize actions.
	Size int64
	// After lists IDs of actions that must run before this one regardless
	// of the derived rules.
	After []int
}

func (a *Action) IsCreate() bool  { return a.Type == ActionCreate }
func (a *Action) IsDestroy() bool { return a.Type == ActionDestroy }
func (a *Action) IsResize() bool  { return a.Type == ActionResize }
func (a *Action) IsDevice() bool  { return a.Object == ObjectDevice }
func (a *Action) IsFormat() bool  { return a.Object == ObjectFormat }

// IsGrow reports a resize to a size above the device's current size.
func (a *Action) IsGrow(t *Tree) bool {
	if !a.IsResize() {
		return false
	}
	d, ok := t.Device(a.Device)

	return ok && a.Size > d.Size
}

// IsShrink reports a resize to a size below the device's current size.
func (a *Action) IsShrink(t *Tree) bool {
	if !a.IsResize() {
		return false
	}
	d, ok := t.Device(a.Device)

	return ok && a.Size < d.Size
}

// String renders the action for logs and error messages, e.g.
// "[3] create format ext4 on sda1".
func (a *Action) String() string {
	switch {
	case a.IsFormat() && a.Format != "" && !a.IsResize():
		return fmt.Sprintf("[%d] %s format %s on %s", a.ID, a.Type, a.Format, a.Device)
	case a.IsResize():
		return fmt.Sprintf("[%d] resize %s %s to %dMiB", a.ID, a.Object, a.Device, a.Size)
	default:
		return fmt.Sprintf("[%d] %s %s %s", a.ID, a.Type, a.Object, a.Device)
	}
}

// validate checks a against the tree.
func (a *Action) validate(t *Tree) error {
	if a.Type < ActionCreate || a.Type > ActionResize {
		return fmt.Errorf("%w: action %d has type %s", ErrInvalidAction, a.ID, a.Type)
	}
	if a.Object < ObjectDevice || a.Object > ObjectFormat {
		return fmt.Errorf("%w: action %d has object %s", ErrInvalidAction, a.ID, a.Object)
	}
	if _, ok := t.Device(a.Device); !ok {
		return fmt.Errorf("%w: %q in action %d", ErrUnknownDevice, a.Device, a.ID)
	}
	if a.IsCreate() && a.IsFormat() && a.Format == "" {
		return fmt.Errorf("%w: %s needs a format type", ErrInvalidAction, a)
	}
	if a.IsResize() && a.Size <= 0 {
		return fmt.Errorf("%w: %s needs a positive size", ErrInvalidAction, a)
	}
	for _, id := range a.After {
		if id == a.ID {
			return fmt.Errorf("%w: action %d lists itself in after", ErrInvalidAction, a.ID)
		}
	}

	return nil
}
