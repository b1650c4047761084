package devicetree

// Prune removes actions that cancel each other out and returns the
// survivors in their original order. The input slice is not modified.
//
//   - create device X ... destroy device X: both, and every action on X in
//     between, are dropped.
//   - create format on X ... destroy format on X (no other format destroy on
//     X in between): both, and any format resize on X in between, are dropped.
//   - several resizes of the same object on X: only the last one is kept.
func Prune(actions []*Action) []*Action {
	dropped := make([]bool, len(actions))

	for j, a := range actions {
		if !a.IsDestroy() {
			continue
		}
		i := lastCreate(actions, dropped, j, a)
		if i < 0 {
			continue
		}
		for k := i; k <= j; k++ {
			b := actions[k]
			if b.Device != a.Device {
				continue
			}
			if a.IsDevice() || b.IsFormat() {
				dropped[k] = true
			}
		}
	}

	// Collapse repeated resizes, keeping the last one of each kind.
	type resizeKey struct {
		device string
		object ObjectType
	}
	last := make(map[resizeKey]int)
	for k, a := range actions {
		if !dropped[k] && a.IsResize() {
			key := resizeKey{a.Device, a.Object}
			if prev, ok := last[key]; ok {
				dropped[prev] = true
			}
			last[key] = k
		}
	}

	out := make([]*Action, 0, len(actions))
	for k, a := range actions {
		if !dropped[k] {
			out = append(out, a)
		}
	}

	return out
}

// lastCreate finds the create matching destroy actions[j] (same device and
// object) with no other destroy of that object in between. It returns -1 if
// there is none.
func lastCreate(actions []*Action, dropped []bool, j int, destroy *Action) int {
	for k := j - 1; k >= 0; k-- {
		b := actions[k]
		if dropped[k] || b.Device != destroy.Device || b.Object != destroy.Object {
			continue
		}
		switch {
		case b.IsCreate():
			return k
		case b.IsDestroy():
			return -1
		}
	}

	return -1
}
