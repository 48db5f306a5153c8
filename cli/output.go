package cli

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/stsysd/projects/model"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// printProjects renders the top-level fields of projects as a table.
func printProjects(w io.Writer, projects []*model.Project) error {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		difficulty := ""
		if p.Difficulty != nil {
			difficulty = strconv.Itoa(*p.Difficulty)
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			hoursCell(p.EstimatedHours),
			hoursCell(p.ActualHours),
			difficulty,
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Estimated", "Actual", "Difficulty")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func hoursCell(h *decimal.Decimal) string {
	if h == nil {
		return ""
	}
	return model.FormatHours(h)
}

func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "\nError: %v Try again.\n\n", err)
}

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}
