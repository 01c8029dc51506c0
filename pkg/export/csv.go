package export

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

var (
	summaryHeader = []string{"order_id", "total_amount", "total_taxes"}
	monthlyHeader = []string{"year", "month", "avg_amount", "avg_taxes"}
)

// CSVWriter writes the two report files. Numeric fields are formatted to
// two decimal places.
type CSVWriter struct {
	delimiter rune
}

func NewCSVWriter(delimiter rune) *CSVWriter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVWriter{delimiter: delimiter}
}

func (w *CSVWriter) WriteSummaries(path string, summaries []domain.OrderSummary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, []string{
			strconv.Itoa(s.OrderID),
			formatAmount(s.TotalAmount),
			formatAmount(s.TotalTaxes),
		})
	}
	return w.writeFile(path, summaryHeader, records)
}

func (w *CSVWriter) WriteMonthlyAverages(path string, averages []domain.MonthlyAverage) error {
	averages = SortMonthly(averages)
	records := make([][]string, 0, len(averages))
	for _, a := range averages {
		records = append(records, []string{
			a.Year,
			a.Month,
			formatAmount(a.AvgAmount),
			formatAmount(a.AvgTaxes),
		})
	}
	return w.writeFile(path, monthlyHeader, records)
}

func (w *CSVWriter) writeFile(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := stdcsv.NewWriter(file)
	writer.Comma = w.delimiter

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
