package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depsort/internal/render"
	"github.com/katalvlaran/depsort/logger"
	"github.com/katalvlaran/depsort/planfile"
	"github.com/katalvlaran/depsort/tsort"
)

type sortOptions struct {
	layers bool
	verify bool
	output string
}

func newSortCmd() *cobra.Command {
	o := &sortOptions{}
	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Print a topological order of a graph file",
		Long: `Reads a YAML graph (items and [parent, child] edges) and prints every item
so that each parent comes before its children. With --layers the items are
grouped into stages that only depend on earlier stages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&o.layers, "layers", false, "group items into dependency stages")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "check the computed order against every edge")
	cmd.Flags().StringVarP(&o.output, "output", "o", string(render.OutputText), "output format: text or json")

	return cmd
}

func (o *sortOptions) run(cmd *cobra.Command, path string) error {
	out, err := render.ParseOutput(o.output)
	if err != nil {
		return err
	}
	l := logger.From(cmd.Context())

	g, err := planfile.LoadGraphFile(path)
	if err != nil {
		return err
	}
	l.Debug("loaded graph", "path", path, "items", g.Len(), "edges", len(g.Edges()))

	if o.layers {
		stages, err := tsort.Layers(g)
		if err != nil {
			return err
		}
		return render.Stages(cmd.OutOrStdout(), out, stages)
	}

	order, err := tsort.Sort(g)
	if err != nil {
		return err
	}
	if o.verify {
		if err := tsort.Verify(order, g); err != nil {
			return err
		}
		l.Info("order verified", "items", len(order))
	}

	return render.Order(cmd.OutOrStdout(), out, order)
}
