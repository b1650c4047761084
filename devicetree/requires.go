package devicetree

// Rule reports whether action a must run after action b.
type Rule func(t *Tree, a, b *Action) bool

// Requires is the built-in Rule. It reports whether a must run after b:
//
//   - create device X: after creates on ancestors of X, after growing an
//     ancestor, after any destroy on X itself (replacement), and, for
//     partitions, after destroying or shrinking a sibling partition.
//   - create format on X: after creating X or an ancestor, after destroying
//     the old format on X and after growing X.
//   - destroy device X: after destroying everything built on X and after
//     destroying the format on X.
//   - destroy format on X: after destroying everything built on X.
//   - shrink device X: after shrinking the format on X and after shrinking
//     or destroying anything built on X.
//   - grow device X: after growing ancestors and after shrinking or
//     destroying sibling partitions.
//   - grow format on X: after growing X.
//   - shrink format on X: after shrinking or destroying anything built on X.
func Requires(t *Tree, a, b *Action) bool {
	if a == b || a.ID == b.ID {
		return false
	}
	same := a.Device == b.Device
	onAncestor := t.DependsOn(a.Device, b.Device)
	onDescendant := t.DependsOn(b.Device, a.Device)
	onSibling := t.siblings(a.Device, b.Device)
	freesSpace := b.IsDevice() && (b.IsDestroy() || b.IsShrink(t))

	switch {
	case a.IsCreate() && a.IsDevice():
		return (b.IsCreate() && onAncestor) ||
			(b.IsDevice() && b.IsGrow(t) && onAncestor) ||
			(b.IsDestroy() && same) ||
			(freesSpace && onSibling)

	case a.IsCreate() && a.IsFormat():
		return (b.IsCreate() && b.IsDevice() && same) ||
			(b.IsCreate() && onAncestor) ||
			(b.IsDestroy() && b.IsFormat() && same) ||
			(b.IsDevice() && b.IsGrow(t) && same)

	case a.IsDestroy() && a.IsDevice():
		return (b.IsDestroy() && onDescendant) ||
			(b.IsDestroy() && b.IsFormat() && same)

	case a.IsDestroy() && a.IsFormat():
		return b.IsDestroy() && onDescendant

	case a.IsDevice() && a.IsShrink(t):
		return (b.IsFormat() && b.IsShrink(t) && same) ||
			((b.IsShrink(t) || b.IsDestroy()) && onDescendant)

	case a.IsDevice() && a.IsGrow(t):
		return (b.IsDevice() && b.IsGrow(t) && onAncestor) ||
			(freesSpace && onSibling)

	case a.IsFormat() && a.IsGrow(t):
		return b.IsDevice() && b.IsGrow(t) && same

	case a.IsFormat() && a.IsShrink(t):
		return (b.IsShrink(t) || b.IsDestroy()) && onDescendant
	}

	return false
}
