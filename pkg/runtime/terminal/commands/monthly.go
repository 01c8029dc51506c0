package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/export"
)

type MonthlyCmd struct {
	flags  pipelineFlags
	output io.Writer
}

func NewMonthlyCmd(output io.Writer) *cobra.Command {
	mc := &MonthlyCmd{output: output}
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Print the monthly revenue and tax averages for the filtered orders",
		RunE:  mc.run,
	}

	mc.flags.register(cmd)

	return cmd
}

func (mc *MonthlyCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	opts, err := mc.flags.resolve(cmd)
	if err != nil {
		return err
	}

	averages, err := opts.controller().MonthlyReport(ctx, opts.status, opts.origin)
	if err != nil {
		return err
	}

	if len(averages) == 0 {
		fmt.Fprintf(mc.output, "No orders matched status=%s origin=%s\n", opts.status, opts.origin)
		return nil
	}

	for _, a := range export.SortMonthly(averages) {
		fmt.Fprintf(mc.output, "%s-%s: avg_amount=%.2f avg_taxes=%.2f\n",
			a.Year, a.Month, a.AvgAmount, a.AvgTaxes)
	}
	return nil
}
