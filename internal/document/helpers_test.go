package document

import (
	"fmt"
	"strings"

	"github.com/trhacknon/custom-devices/internal/models"
)

// sampleQuote is the ESP32 DevKit + GPS + NRF24L01 configuration, total 44
func sampleQuote() *models.Quote {
	return &models.Quote{
		ID: "test-quote",
		Selection: models.Selection{
			Board:      "ESP32 DevKit",
			Modules:    []string{"GPS NEO-6M", "NRF24L01"},
			Firmware:   "Bruce",
			BuyerName:  "Jean Dupont",
			BuyerEmail: "jean@example.com",
		},
		Board:    models.LineItem{Name: "ESP32 DevKit", Price: 25},
		Firmware: &models.LineItem{Name: "Bruce", Price: 0},
		Modules: []models.LineItem{
			{Name: "GPS NEO-6M", Price: 15},
			{Name: "NRF24L01", Price: 4},
		},
		Total: 44,
	}
}

// longQuote returns a quote with n modules priced 1 € each on a 10 € board
func longQuote(n int) *models.Quote {
	q := &models.Quote{
		Selection: models.Selection{BuyerName: "Big Order", BuyerEmail: "big@example.com"},
		Board:     models.LineItem{Name: "ESP32-S3", Price: 10},
		Total:     10,
	}
	for i := 0; i < n; i++ {
		q.Modules = append(q.Modules, models.LineItem{Name: fmt.Sprintf("Module %02d", i+1), Price: 1})
		q.Total++
	}
	return q
}

// countStyle reports how many lines of a page have one of the given styles
func countStyle(p Page, styles ...LineStyle) int {
	n := 0
	for _, line := range p.Lines {
		for _, s := range styles {
			if line.Style == s {
				n++
				break
			}
		}
	}
	return n
}

// layoutText joins every line of a layout, pages separated by a form feed
func layoutText(l Layout) string {
	var b strings.Builder
	for i, p := range l.Pages {
		if i > 0 {
			b.WriteString("\f")
		}
		for _, line := range p.Lines {
			b.WriteString(line.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
