package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

const (
	summarySheet = "Order Summaries"
	monthlySheet = "Monthly Averages"
)

// XLSXWriter renders both reports into a single two-sheet workbook.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (w *XLSXWriter) WriteReport(
	path string,
	summaries []domain.OrderSummary,
	averages []domain.MonthlyAverage,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, s := range summaries {
		row := []string{
			fmt.Sprintf("%d", s.OrderID),
			formatAmount(s.TotalAmount),
			formatAmount(s.TotalTaxes),
		}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, monthlySheet, 1, monthlyHeader); err != nil {
		return err
	}
	for i, a := range SortMonthly(averages) {
		row := []string{a.Year, a.Month, formatAmount(a.AvgAmount), formatAmount(a.AvgTaxes)}
		if err := writeRow(f, monthlySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
