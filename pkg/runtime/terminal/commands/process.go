package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/order-atlas/pkg/export"
)

type ProcessCmd struct {
	flags   pipelineFlags
	format  string
	preview bool
	output  io.Writer
}

func NewProcessCmd(output io.Writer) *cobra.Command {
	pc := &ProcessCmd{output: output}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Filter orders and write the summary and monthly average reports",
		RunE:  pc.run,
	}

	pc.flags.register(cmd)
	cmd.Flags().StringVar(&pc.format, "format", "csv", "Report format (csv or xlsx)")
	cmd.Flags().BoolVar(&pc.preview, "preview", false, "Print the reports to the console as well")

	return cmd
}

func (pc *ProcessCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	opts, err := pc.flags.resolve(cmd)
	if err != nil {
		return err
	}

	ctrl := opts.controller()
	summaries, err := ctrl.Summaries(ctx, opts.status, opts.origin)
	if err != nil {
		return err
	}
	averages, err := ctrl.MonthlyReport(ctx, opts.status, opts.origin)
	if err != nil {
		return err
	}

	switch pc.format {
	case "csv":
		writer := export.NewCSVWriter(opts.delimiter)
		summariesPath := filepath.Join(opts.outputDir, "order_summaries.csv")
		if err := writer.WriteSummaries(summariesPath, summaries); err != nil {
			return err
		}
		monthlyPath := filepath.Join(opts.outputDir, "monthly_averages.csv")
		if err := writer.WriteMonthlyAverages(monthlyPath, averages); err != nil {
			return err
		}
		logger.Info().Str("summaries", summariesPath).Str("monthly", monthlyPath).Msg("reports written")
	case "xlsx":
		reportPath := filepath.Join(opts.outputDir, "order_report.xlsx")
		if err := export.NewXLSXWriter().WriteReport(reportPath, summaries, averages); err != nil {
			return err
		}
		logger.Info().Str("report", reportPath).Msg("report written")
	default:
		return fmt.Errorf("unsupported format %q, want csv or xlsx", pc.format)
	}

	if pc.preview {
		return export.NewReporter(pc.output).Handle(opts.status, opts.origin, summaries, averages)
	}
	return nil
}
