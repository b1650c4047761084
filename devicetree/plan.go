package devicetree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/depsort/logger"
	"github.com/katalvlaran/depsort/tsort"
)

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used by the planner. By default the logger
// stored in the context passed to Plan is used.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithoutPrune disables Prune; every valid action is kept.
func WithoutPrune() Option {
	return func(p *Planner) { p.prune = false }
}

// WithRule adds a Rule evaluated next to Requires.
func WithRule(r Rule) Option {
	return func(p *Planner) {
		if r != nil {
			p.rules = append(p.rules, r)
		}
	}
}

// Planner orders actions on a Tree.
type Planner struct {
	tree  *Tree
	log   *slog.Logger
	prune bool
	rules []Rule
}

// NewPlanner returns a Planner for t with Requires as its only rule.
func NewPlanner(t *Tree, opts ...Option) *Planner {
	p := &Planner{tree: t, prune: true, rules: []Rule{Requires}}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Planner) loggerFor(ctx context.Context) *slog.Logger {
	if p.log != nil {
		return p.log
	}

	return logger.From(ctx)
}

// Validate checks every action against the tree and rejects duplicate IDs.
func (p *Planner) Validate(actions []*Action) error {
	seen := make(map[int]bool, len(actions))
	var errs []error
	for _, a := range actions {
		if a == nil {
			errs = append(errs, fmt.Errorf("%w: nil action", ErrInvalidAction))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateAction, a.ID))
		}
		seen[a.ID] = true
		if err := a.validate(p.tree); err != nil {
			errs = append(errs, err)
		}
	}
	for _, a := range actions {
		if a == nil {
			continue
		}
		for _, id := range a.After {
			if !seen[id] {
				errs = append(errs, fmt.Errorf("%w: action %d runs after unknown action %d", ErrInvalidAction, a.ID, id))
			}
		}
	}

	return errors.Join(errs...)
}

// Graph validates and prunes actions and returns the dependency graph over
// the surviving action IDs together with an ID lookup table. Edge b → a
// means a must run after b.
func (p *Planner) Graph(ctx context.Context, actions []*Action) (*tsort.Graph[int], map[int]*Action, error) {
	log := p.loggerFor(ctx)
	if err := p.Validate(actions); err != nil {
		return nil, nil, err
	}

	kept := actions
	if p.prune {
		kept = Prune(actions)
		if n := len(actions) - len(kept); n > 0 {
			log.Debug("pruned obsolete actions", "pruned", n, "kept", len(kept))
		}
	}

	byID := make(map[int]*Action, len(kept))
	ids := make([]int, len(kept))
	for i, a := range kept {
		byID[a.ID] = a
		ids[i] = a.ID
	}

	var edges []tsort.Edge[int]
	for _, a := range kept {
		for _, b := range kept {
			if a == b {
				continue
			}
			for _, rule := range p.rules {
				if rule(p.tree, a, b) {
					edges = append(edges, tsort.Edge[int]{Parent: b.ID, Child: a.ID})
					break
				}
			}
		}
		for _, id := range a.After {
			if _, ok := byID[id]; !ok {
				log.Debug("ignoring dependency on pruned action", "action", a.String(), "after", id)
				continue
			}
			edges = append(edges, tsort.Edge[int]{Parent: id, Child: a.ID})
		}
	}
	log.Debug("built action graph", "actions", len(ids), "constraints", len(edges))

	g, err := tsort.New(ids, edges)
	if err != nil {
		return nil, nil, fmt.Errorf("devicetree: building action graph: %w", err)
	}

	return g, byID, nil
}

// Plan returns the actions in an order that satisfies every constraint.
// A cycle yields *PlanCycleError; no partial order is returned.
func (p *Planner) Plan(ctx context.Context, actions []*Action) ([]*Action, error) {
	g, byID, err := p.Graph(ctx, actions)
	if err != nil {
		return nil, err
	}

	order, err := tsort.Sort(g)
	if err != nil {
		return nil, p.cycleError(ctx, err, byID)
	}

	out := make([]*Action, len(order))
	for i, id := range order {
		out[i] = byID[id]
	}
	p.loggerFor(ctx).Info("planned storage actions", "count", len(out))

	return out, nil
}

// Stages groups the actions into stages; actions within a stage do not
// depend on each other.
func (p *Planner) Stages(ctx context.Context, actions []*Action) ([][]*Action, error) {
	g, byID, err := p.Graph(ctx, actions)
	if err != nil {
		return nil, err
	}

	layers, err := tsort.Layers(g)
	if err != nil {
		return nil, p.cycleError(ctx, err, byID)
	}

	out := make([][]*Action, len(layers))
	for i, layer := range layers {
		out[i] = make([]*Action, len(layer))
		for j, id := range layer {
			out[i][j] = byID[id]
		}
	}

	return out, nil
}

func (p *Planner) cycleError(ctx context.Context, err error, byID map[int]*Action) error {
	var ce *tsort.CyclicGraphError[int]
	if !errors.As(err, &ce) {
		return err
	}
	cycle := make([]*Action, len(ce.Cycle))
	for i, id := range ce.Cycle {
		cycle[i] = byID[id]
	}
	pe := &PlanCycleError{Cycle: cycle, Err: err}
	p.loggerFor(ctx).Error("storage plan is inconsistent", "error", pe.Error())

	return pe
}
