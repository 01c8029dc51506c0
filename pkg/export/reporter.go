package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

// Reporter renders reports to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type consoleReport struct {
	Status    string
	Origin    string
	Summaries []domain.OrderSummary
	Monthly   []domain.MonthlyAverage
}

func (c *Reporter) Handle(
	status, origin string,
	summaries []domain.OrderSummary,
	averages []domain.MonthlyAverage,
) error {
	tmpl := `
Order report (status={{.Status}}, origin={{.Origin}})

=== Order Summaries ===
{{range .Summaries}}
- order {{.OrderID}}: amount {{printf "%.2f" .TotalAmount}}, taxes {{printf "%.2f" .TotalTaxes}}
{{else}}
(no orders matched the filter)
{{end}}

=== Monthly Averages ===
{{range .Monthly}}
- {{.Year}}-{{.Month}}: avg amount {{printf "%.2f" .AvgAmount}}, avg taxes {{printf "%.2f" .AvgTaxes}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, consoleReport{
		Status:    status,
		Origin:    origin,
		Summaries: summaries,
		Monthly:   SortMonthly(averages),
	})
}
