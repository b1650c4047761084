package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/depsort/devicetree"
	"github.com/katalvlaran/depsort/internal/render"
	"github.com/katalvlaran/depsort/logger"
	"github.com/katalvlaran/depsort/planfile"
	"github.com/katalvlaran/depsort/tsort"
)

type graphOptions struct {
	plan bool
}

func newGraphCmd() *cobra.Command {
	o := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Export a dependency graph as a Mermaid diagram",
		Long: `Reads a graph file (or a storage plan with --plan) and prints a Mermaid
flowchart (graph TD). A cycle, if any, is highlighted instead of failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&o.plan, "plan", false, "treat FILE as a storage plan and draw its action graph")

	return cmd
}

func (o *graphOptions) run(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	l := logger.From(ctx)

	if !o.plan {
		g, err := planfile.LoadGraphFile(path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), render.Mermaid(g, nil, cycleOverlay(l, g)))
		return err
	}

	p, err := planfile.LoadPlanFile(path)
	if err != nil {
		return err
	}
	g, byID, err := devicetree.NewPlanner(p.Tree).Graph(ctx, p.Actions)
	if err != nil {
		return err
	}
	label := func(id int) string { return byID[id].String() }
	_, err = fmt.Fprint(cmd.OutOrStdout(), render.Mermaid(g, label, cycleOverlay(l, g)))

	return err
}

func cycleOverlay[T comparable](l *slog.Logger, g *tsort.Graph[T]) *render.Overlay[T] {
	cycle, ok := tsort.FindCycle(g)
	if !ok {
		return nil
	}
	l.Warn("graph contains a cycle", "cycle", fmt.Sprint(cycle))

	return &render.Overlay[T]{Cycle: cycle}
}
