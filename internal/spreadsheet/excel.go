// Package spreadsheet renders aggregated reports as Excel workbooks.
// Excel is the production generator; Memory is an in-process fake for
// tests that only care that a report was produced.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/WynstelleID/finance-bot/internal/models"
	"github.com/WynstelleID/finance-bot/internal/services"
)

const sheetName = "Financial Report"

var headers = []string{"Date", "Type", "Category", "Amount", "Notes"}

// Excel generates styled xlsx workbooks with excelize.
type Excel struct{}

// NewExcel creates an Excel generator.
func NewExcel() *Excel {
	return &Excel{}
}

// Generate renders the report as a workbook: a styled header row, one row
// per transaction with type-colored fonts, and a trailing summary block
// with the report period and per-type totals.
func (g *Excel) Generate(rep *services.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "E", 15); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	if err := g.writeHeader(f); err != nil {
		return nil, err
	}
	if err := g.writeRows(f, rep); err != nil {
		return nil, err
	}
	if err := g.writeSummary(f, rep, len(rep.Transactions)+2); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func (g *Excel) writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000080"}},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func (g *Excel) writeRows(f *excelize.File, rep *services.Report) error {
	styles, err := g.rowStyles(f)
	if err != nil {
		return err
	}

	for i, t := range rep.Transactions {
		row := i + 2
		categoryName := "N/A"
		if t.Category != nil {
			categoryName = t.Category.Name
		}
		notes := ""
		if t.Notes != nil {
			notes = *t.Notes
		}
		values := []interface{}{
			t.TransactionDate.Format("2006-01-02 15:04:05"),
			typeLabel(t.Type),
			categoryName,
			t.Amount,
			notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, styles[t.Type]); err != nil {
				return err
			}
		}
	}
	return nil
}

// rowStyles returns a bordered style per transaction type: income dark
// green, expense red, asset adjustments blue.
func (g *Excel) rowStyles(f *excelize.File) (map[models.TransactionType]int, error) {
	colors := map[models.TransactionType]string{
		models.TransactionTypeIncome:          "006400",
		models.TransactionTypeExpense:         "FF0000",
		models.TransactionTypeAssetAdjustment: "0000FF",
	}

	styles := make(map[models.TransactionType]int, len(colors))
	for transactionType, color := range colors {
		style, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Color: color},
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Vertical: "center"},
		})
		if err != nil {
			return nil, fmt.Errorf("row style: %w", err)
		}
		styles[transactionType] = style
	}
	return styles, nil
}

func (g *Excel) writeSummary(f *excelize.File, rep *services.Report, lastDataRow int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}

	periodText := "All Time"
	if rep.Window.Start != nil {
		periodText = fmt.Sprintf("%s to %s",
			rep.Window.Start.Format("2006-01-02"), rep.Window.End.Format("2006-01-02"))
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Report Period:", periodText},
		{"Total Income:", rep.TotalIncome},
		{"Total Expenses:", rep.TotalExpense},
		{"Total Asset Adjustments:", rep.TotalAdjustment},
		{"Net Flow (Income - Expenses + Adjustments):", rep.NetFlow()},
	}

	// Two blank rows between data and summary.
	start := lastDataRow + 3
	for i, r := range rows {
		labelCell, err := excelize.CoordinatesToCellName(1, start+i)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, start+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, labelCell, r.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, valueCell, r.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, labelCell, valueCell, style); err != nil {
			return err
		}
	}
	return nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}

func typeLabel(t models.TransactionType) string {
	switch t {
	case models.TransactionTypeIncome:
		return "Income"
	case models.TransactionTypeExpense:
		return "Expense"
	default:
		return "Asset_adjustment"
	}
}
