// Where: internal/presenters/report.go
// What: Timing report rendering.
// Why: Keep the result table format in one place, separate from the workflow.
package presenters

import (
	"fmt"

	domain "github.com/poruru-code/flutterbench/internal/domain/bench"
	"github.com/poruru-code/flutterbench/internal/infra/ui"
)

const (
	reportTitle = "===== BENCHMARK RESULTS ====="
	totalLabel  = "TOTAL"
	labelWidth  = 24
)

// PrintReport renders each step duration followed by the TOTAL line.
func PrintReport(ui ui.UserInterface, record domain.Record) {
	if ui == nil {
		return
	}
	ui.Info("\n" + reportTitle)
	for _, entry := range record.Entries() {
		ui.Info(reportLine(entry.Label, entry.Seconds))
	}
	ui.Info(reportLine(totalLabel, record.Total()))
}

func reportLine(label string, seconds float64) string {
	return fmt.Sprintf("%-*s: %.2f sec", labelWidth, label, seconds)
}
