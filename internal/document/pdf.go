package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Row heights in millimetres. Every text line uses linePitch.
const (
	titleHeight   = 12
	linePitch     = 7
	totalHeight   = 12
	previewHeight = 35
)

// GeneratePDF draws a quote layout using maroto/v2, one maroto page per
// layout page. preview is an optional JPEG drawn under the first title.
// It returns the raw PDF bytes or an error.
func GeneratePDF(layout Layout, preview []byte) ([]byte, error) {
	if len(layout.Pages) == 0 {
		return nil, fmt.Errorf("failed to generate PDF: empty layout")
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	for i, p := range layout.Pages {
		rows := make([]core.Row, 0, len(p.Lines)+1)
		for j, line := range p.Lines {
			rows = append(rows, lineRow(line))
			if i == 0 && j == 0 && len(preview) > 0 {
				rows = append(rows, previewRow(preview))
			}
		}
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// lineRow converts a layout line to a maroto row styled by its role.
func lineRow(line Line) core.Row {
	switch line.Style {
	case StyleTitle:
		return row.New(titleHeight).Add(
			col.New(12).Add(
				text.New(line.Text, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		)
	case StyleEntry:
		// Entries sit one grid column in from their heading.
		return row.New(linePitch).Add(
			col.New(1),
			col.New(11).Add(
				text.New(line.Text, props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
		)
	case StyleTotal:
		return row.New(totalHeight).Add(
			col.New(12).Add(
				text.New(line.Text, props.Text{
					Top:   4,
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		)
	case StyleNote:
		return row.New(linePitch).Add(
			col.New(12).Add(
				text.New(line.Text, props.Text{
					Size:  9,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		)
	default:
		return row.New(linePitch).Add(
			col.New(12).Add(
				text.New(line.Text, props.Text{
					Size:  12,
					Align: align.Left,
				}),
			),
		)
	}
}

// previewRow draws the device thumbnail on the left of a fixed-height row.
func previewRow(preview []byte) core.Row {
	return row.New(previewHeight).Add(
		image.NewFromBytesCol(4, preview, extension.Jpg, props.Rect{
			Percent: 90,
			Center:  true,
		}),
		col.New(8),
	)
}
