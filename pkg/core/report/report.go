// Package report builds the markdown analysis summary that the export
// layer serves to users, covering the base-case breakdown, the scenario
// matrix and the sensitivity ranking.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"capex_forecast/pkg/core/capex"
	"capex_forecast/pkg/core/finance"
	"capex_forecast/pkg/core/scenario"
	"capex_forecast/pkg/core/sensitivity"
)

// ProjectMeta describes the project a report is generated for.
type ProjectMeta struct {
	Name       string  `json:"name"`
	Technology string  `json:"technology"`
	CapacityMW float64 `json:"capacity_mw"`
}

// Summary is one generated report. ID is a fresh UUID per generation so
// downstream consumers can reference a specific run.
type Summary struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Markdown    string    `json:"markdown"`
}

// Build assembles the markdown summary for one analysis run.
func Build(meta ProjectMeta, breakdown capex.CostBreakdown, rows []scenario.MatrixRow, sens []sensitivity.Result) Summary {
	var b strings.Builder

	now := time.Now()

	// Header
	b.WriteString("# Renewable Energy CapEx Analysis Report\n\n")
	fmt.Fprintf(&b, "- **Project**: %s\n", meta.Name)
	fmt.Fprintf(&b, "- **Technology**: %s\n", meta.Technology)
	fmt.Fprintf(&b, "- **Capacity**: %.1f MW\n", meta.CapacityMW)
	fmt.Fprintf(&b, "- **Analysis Date**: %s\n\n", now.Format("2006-01-02"))

	// Base case
	b.WriteString("## Base Case Results\n\n")
	fmt.Fprintf(&b, "- Total CapEx: %s\n", finance.FormatCurrency(breakdown.Total, 2))
	if meta.CapacityMW > 0 {
		fmt.Fprintf(&b, "- Cost per MW: %s\n", finance.FormatCurrency(breakdown.Total/meta.CapacityMW, 0))
	}
	fmt.Fprintf(&b, "- Equipment: %s | Labor: %s | Financing: %s | Other: %s\n\n",
		finance.FormatCurrency(breakdown.Equipment, 1),
		finance.FormatCurrency(breakdown.Labor, 1),
		finance.FormatCurrency(breakdown.Financing, 1),
		finance.FormatCurrency(breakdown.Other, 1))

	// Scenario matrix
	if len(rows) > 0 {
		b.WriteString("## Scenario Comparison\n\n")
		b.WriteString("| Timeline (Years) | Scenario | Total | Cost per MW |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
				row.TimelineYears, row.Scenario,
				finance.FormatCurrency(row.Breakdown.Total, 1),
				finance.FormatCurrency(row.TotalPerMW, 0))
		}
		b.WriteString("\n")
	}

	// Tornado ranking
	if len(sens) > 0 {
		b.WriteString("## Key Sensitivity Factors\n\n")
		b.WriteString("| Rank | Parameter | Low Total | High Total | Impact |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for i, r := range sens {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				i+1, r.Parameter,
				finance.FormatCurrency(r.LowTotal, 1),
				finance.FormatCurrency(r.HighTotal, 1),
				finance.FormatCurrency(r.Impact, 1))
		}
		b.WriteString("\n")
	}

	return Summary{
		ID:          uuid.New().String(),
		GeneratedAt: now,
		Markdown:    b.String(),
	}
}
