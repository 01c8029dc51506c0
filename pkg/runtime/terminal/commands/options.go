package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/services/config"
	"github.com/de-tools/order-atlas/pkg/services/pipeline"
	"github.com/de-tools/order-atlas/pkg/store/csv"
)

const (
	defaultStatus = "Complete"
	defaultOrigin = "O"
)

// runOptions are the source/filter settings shared by the pipeline
// commands, after profile values and explicit flags are reconciled.
type runOptions struct {
	ordersPath string
	itemsPath  string
	status     string
	origin     string
	outputDir  string
	delimiter  rune
}

type pipelineFlags struct {
	profilePath string
	ordersPath  string
	itemsPath   string
	status      string
	origin      string
	outputDir   string
}

func (pf *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.profilePath, "profile", "", "Path to a run profile file")
	cmd.Flags().StringVar(&pf.ordersPath, "orders", "", "Path to the orders source file")
	cmd.Flags().StringVar(&pf.itemsPath, "items", "", "Path to the order items source file")
	cmd.Flags().StringVar(&pf.status, "status", defaultStatus, "Order status to keep (Pending, Complete, Cancelled)")
	cmd.Flags().StringVar(&pf.origin, "origin", defaultOrigin, "Order origin to keep (P or O)")
	cmd.Flags().StringVar(&pf.outputDir, "out", ".", "Directory the reports are written to")
}

// resolve merges the optional profile with the flags. Explicit flags win
// over profile values.
func (pf *pipelineFlags) resolve(cmd *cobra.Command) (runOptions, error) {
	opts := runOptions{
		ordersPath: pf.ordersPath,
		itemsPath:  pf.itemsPath,
		status:     pf.status,
		origin:     pf.origin,
		outputDir:  pf.outputDir,
		delimiter:  ',',
	}

	if pf.profilePath != "" {
		profile, err := config.LoadProfile(pf.profilePath)
		if err != nil {
			return runOptions{}, err
		}

		opts.delimiter = profile.DelimiterRune()
		if !cmd.Flags().Changed("orders") {
			opts.ordersPath = profile.OrdersPath
		}
		if !cmd.Flags().Changed("items") {
			opts.itemsPath = profile.ItemsPath
		}
		if !cmd.Flags().Changed("status") {
			opts.status = profile.Filter.Status
		}
		if !cmd.Flags().Changed("origin") {
			opts.origin = profile.Filter.Origin
		}
		if !cmd.Flags().Changed("out") {
			opts.outputDir = profile.OutputDir
		}
	}

	if opts.ordersPath == "" || opts.itemsPath == "" {
		return runOptions{}, fmt.Errorf("orders and items sources are required (set --orders/--items or a --profile)")
	}
	return opts, nil
}

func (o runOptions) controller() pipeline.Controller {
	store := csv.NewStore(csv.Settings{
		OrdersPath: o.ordersPath,
		ItemsPath:  o.itemsPath,
		Delimiter:  o.delimiter,
	})
	return pipeline.NewController(store)
}
