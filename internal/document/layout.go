package document

import (
	"fmt"
	"strings"

	"github.com/trhacknon/custom-devices/internal/models"
)

// Title heads every page of a quote
const Title = "TRHACKNON Custom Devices – Devis"

const continuationMarker = " (suite)"

// DefaultLinesPerPage caps the module/option list lines placed on one page
const DefaultLinesPerPage = 20

// MaxLinesPerPage is the largest list cap that keeps a full first page on
// one A4 sheet at the PDF row heights: title, preview, five header lines,
// total and notes take 101 mm, twenty list lines 140 mm, within the 262 mm
// left between the 15 mm top and maroto's 20 mm bottom margin.
const MaxLinesPerPage = 20

// LineStyle selects how a layout line is drawn
type LineStyle int

const (
	StyleTitle LineStyle = iota
	StyleText
	StyleHeading
	StyleEntry
	StyleTotal
	StyleNote
)

// Line is one line of the quote, drawn top to bottom at a fixed pitch
type Line struct {
	Text  string
	Style LineStyle
}

// Page holds the lines drawn on one page
type Page struct {
	Number int
	Lines  []Line
}

// Layout is the page-by-page content of a rendered quote. PDF and XLSX
// output both draw from it, so it is the single source of rendered text.
type Layout struct {
	Pages []Page
}

// BuildLayout lays out a quote. The header block goes on the first page,
// module and option lines are split into chunks of at most linesPerPage
// (never more than MaxLinesPerPage), and each continuation page repeats
// the title. The total, then notes, close the last page.
func BuildLayout(q *models.Quote, linesPerPage int) Layout {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}
	linesPerPage = min(linesPerPage, MaxLinesPerPage)

	header := []Line{
		{Text: Title, Style: StyleTitle},
		{Text: "Client : " + q.Selection.BuyerName, Style: StyleText},
		{Text: "Email : " + q.Selection.BuyerEmail, Style: StyleText},
		{Text: "Configuration sélectionnée :", Style: StyleText},
		{Text: "- Carte : " + FormatItem(q.Board.Name, q.Board.Price), Style: StyleText},
	}
	if q.Firmware != nil {
		header = append(header, Line{Text: "- Firmware : " + FormatItem(q.Firmware.Name, q.Firmware.Price), Style: StyleText})
	}

	list := make([]Line, 0, len(q.Modules)+len(q.Options)+2)
	list = append(list, Line{Text: "- Modules :", Style: StyleHeading})
	for _, m := range q.Modules {
		list = append(list, Line{Text: FormatItem(m.Name, m.Price), Style: StyleEntry})
	}
	list = append(list, Line{Text: "- Options :", Style: StyleHeading})
	for _, o := range q.Options {
		list = append(list, Line{Text: FormatItem(o.Name, o.Price), Style: StyleEntry})
	}

	var pages []Page
	for start := 0; start < len(list); start += linesPerPage {
		end := min(start+linesPerPage, len(list))

		var lines []Line
		if start == 0 {
			lines = append(lines, header...)
		} else {
			lines = append(lines, Line{Text: Title + continuationMarker, Style: StyleTitle})
		}
		lines = append(lines, list[start:end]...)

		pages = append(pages, Page{Number: len(pages) + 1, Lines: lines})
	}

	last := &pages[len(pages)-1]
	last.Lines = append(last.Lines, Line{Text: FormatTotal(q.Total), Style: StyleTotal})
	if notes := strings.TrimSpace(q.Selection.Notes); notes != "" {
		last.Lines = append(last.Lines, Line{Text: "Notes : " + notes, Style: StyleNote})
	}

	return Layout{Pages: pages}
}

// TotalLine returns the text of the total line
func (l Layout) TotalLine() (string, error) {
	for i := len(l.Pages) - 1; i >= 0; i-- {
		for _, line := range l.Pages[i].Lines {
			if line.Style == StyleTotal {
				return line.Text, nil
			}
		}
	}
	return "", fmt.Errorf("layout has no total line")
}
