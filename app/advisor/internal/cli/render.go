package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/domain"
)

// schemeColumns 表格模式下展示的列，其余列仅在 --json 中输出
var schemeColumns = []string{"schemeName", "level", "schemeCategory", "tags"}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderColleges(w io.Writer, location, domainName string, matches []*domain.CollegeMatch) {
	title := color.New(color.FgYellow)
	if len(matches) == 0 {
		title.Fprintf(w, "No colleges in %s offer %s\n", location, domainName)
		return
	}
	title.Fprintf(w, "\n%s colleges in %s (%d)\n", domainName, location, len(matches))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "City", "State", "Rank", "Fee", "Avg Package", "Years", "Stream"})
	for _, m := range matches {
		rank := "-"
		if m.Rank != nil {
			rank = strconv.Itoa(*m.Rank)
		}
		stream := "-"
		if m.RequiredStream != nil {
			stream = *m.RequiredStream
		}
		table.Append([]string{
			m.Name,
			m.Type,
			m.City,
			m.State,
			rank,
			fmt.Sprintf("%.0f", m.Fee),
			fmt.Sprintf("%.0f", m.AvgPlacementPackage),
			strconv.Itoa(m.DurationYears),
			stream,
		})
	}
	table.Render()
}

func renderSchemes(w io.Writer, schemes []*domain.Scheme) {
	title := color.New(color.FgYellow)
	if len(schemes) == 0 {
		title.Fprintln(w, "No matching schemes")
		return
	}
	title.Fprintf(w, "\nMatching schemes (%d)\n", len(schemes))

	table := tablewriter.NewWriter(w)
	table.SetHeader(schemeColumns)
	table.SetAutoWrapText(true)
	for _, s := range schemes {
		row := make([]string, len(schemeColumns))
		for i, col := range schemeColumns {
			row[i], _ = s.Get(col)
		}
		table.Append(row)
	}
	table.Render()
}

func renderSuggestion(w io.Writer, userID, text string) {
	color.New(color.FgCyan).Fprintf(w, "\nSuggestion for %s\n", userID)
	fmt.Fprintln(w, text)
}
