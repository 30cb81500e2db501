package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/trhacknon/custom-devices/internal/models"
)

// SheetName is the worksheet holding the quote
const SheetName = "Devis"

// GenerateExcel writes a quote to a single-sheet workbook: the header
// block, one table row per chosen item, then the total and notes.
// The total cell holds the layout's total line so both formats agree.
func GenerateExcel(q *models.Quote, layout Layout) ([]byte, error) {
	totalLine, err := layout.TotalLine()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 14, "B": 42, "C": 12}
	for c, w := range widths {
		if err := f.SetColWidth(SheetName, c, c, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	cells := []struct {
		ref   string
		value any
	}{
		{"A1", Title},
		{"A2", "Client"},
		{"B2", q.Selection.BuyerName},
		{"A3", "Email"},
		{"B3", q.Selection.BuyerEmail},
		{"A5", "Catégorie"},
		{"B5", "Article"},
		{"C5", "Prix (€)"},
	}
	for _, c := range cells {
		if err := f.SetCellValue(SheetName, c.ref, c.value); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", c.ref, err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", titleStyle); err != nil {
		return nil, fmt.Errorf("style title: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A5", "C5", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	r := 6
	addItem := func(category string, item models.LineItem) error {
		values := []any{category, item.Name, item.Price}
		cell, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("set row %d: %w", r, err)
		}
		r++
		return nil
	}

	if err := addItem("Carte", q.Board); err != nil {
		return nil, err
	}
	if q.Firmware != nil {
		if err := addItem("Firmware", *q.Firmware); err != nil {
			return nil, err
		}
	}
	for _, m := range q.Modules {
		if err := addItem("Module", m); err != nil {
			return nil, err
		}
	}
	for _, o := range q.Options {
		if err := addItem("Option", o); err != nil {
			return nil, err
		}
	}

	r++
	totalCell := fmt.Sprintf("A%d", r)
	if err := f.SetCellValue(SheetName, totalCell, totalLine); err != nil {
		return nil, fmt.Errorf("set total: %w", err)
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("C%d", r), q.Total); err != nil {
		return nil, fmt.Errorf("set total amount: %w", err)
	}
	if err := f.SetCellStyle(SheetName, totalCell, fmt.Sprintf("C%d", r), totalStyle); err != nil {
		return nil, fmt.Errorf("style total: %w", err)
	}

	if q.Selection.Notes != "" {
		r++
		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", r), "Notes"); err != nil {
			return nil, fmt.Errorf("set notes label: %w", err)
		}
		if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", r), q.Selection.Notes); err != nil {
			return nil, fmt.Errorf("set notes: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
