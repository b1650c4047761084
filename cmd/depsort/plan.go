package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/depsort/devicetree"
	"github.com/katalvlaran/depsort/internal/render"
	"github.com/katalvlaran/depsort/logger"
	"github.com/katalvlaran/depsort/planfile"
)

type planOptions struct {
	apply   bool
	noPrune bool
	stages  bool
	output  string
}

func newPlanCmd() *cobra.Command {
	o := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Order the actions of a storage plan",
		Long: `Reads a YAML storage plan (devices and actions), drops actions that cancel
each other out and prints the remaining actions in an order where every
action runs after the actions it depends on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&o.apply, "apply", false, "walk the ordered actions through a dry-run executor")
	cmd.Flags().BoolVar(&o.noPrune, "no-prune", false, "keep actions that cancel each other out")
	cmd.Flags().BoolVar(&o.stages, "stages", false, "group actions into independent stages")
	cmd.Flags().StringVarP(&o.output, "output", "o", string(render.OutputText), "output format: text or json")
	cmd.MarkFlagsMutuallyExclusive("apply", "stages")

	return cmd
}

func (o *planOptions) run(cmd *cobra.Command, path string) error {
	out, err := render.ParseOutput(o.output)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	l := logger.From(ctx)

	p, err := planfile.LoadPlanFile(path)
	if err != nil {
		return err
	}
	l.Debug("loaded plan", "path", path, "devices", len(p.Tree.Devices()), "actions", len(p.Actions))

	var opts []devicetree.Option
	if o.noPrune {
		opts = append(opts, devicetree.WithoutPrune())
	}
	planner := devicetree.NewPlanner(p.Tree, opts...)

	if o.stages {
		stages, err := planner.Stages(ctx, p.Actions)
		if err != nil {
			return err
		}
		return render.Stages(cmd.OutOrStdout(), out, describeStages(stages))
	}

	ordered, err := planner.Plan(ctx, p.Actions)
	if err != nil {
		return err
	}
	if err := render.Order(cmd.OutOrStdout(), out, describe(ordered)); err != nil {
		return err
	}
	if !o.apply {
		return nil
	}

	return devicetree.NewExecutor(devicetree.DryRunApplier{}, nil).Execute(ctx, ordered)
}

func describe(actions []*devicetree.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}

	return out
}

func describeStages(stages [][]*devicetree.Action) [][]string {
	out := make([][]string, len(stages))
	for i, s := range stages {
		out[i] = describe(s)
	}

	return out
}
