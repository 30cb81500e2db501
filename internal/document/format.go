package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	currencySymbol = "€"
	totalPrefix    = "Total : "
)

var ErrNoTotalLine = errors.New("not a total line")

// FormatEUR renders a whole-euro amount the way quotes print it, e.g. "44 €"
func FormatEUR(amount int) string {
	return fmt.Sprintf("%d %s", amount, currencySymbol)
}

// FormatItem renders a catalog line such as "ESP32 DevKit (25 €)"
func FormatItem(name string, price int) string {
	return fmt.Sprintf("%s (%s)", name, FormatEUR(price))
}

// FormatTotal renders the total line of a quote
func FormatTotal(total int) string {
	return totalPrefix + FormatEUR(total)
}

// ParseTotalLine recovers the amount from a line produced by FormatTotal
func ParseTotalLine(line string) (int, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, totalPrefix) || !strings.HasSuffix(line, currencySymbol) {
		return 0, fmt.Errorf("%w: %q", ErrNoTotalLine, line)
	}

	amount := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, totalPrefix), currencySymbol))
	total, err := strconv.Atoi(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrNoTotalLine, line, err)
	}
	return total, nil
}
