package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-products-cli/internal/model"
)

const EmptyListMessage = "List is empty."

const (
	indexWidth  = 4
	nameWidth   = 30
	marketWidth = 20
	countWidth  = 10
)

// RenderProducts writes records as a bordered table, numbering rows from 1.
// Names and market titles longer than their column are cut.
func RenderProducts(w io.Writer, records []model.ProductRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, EmptyListMessage)
		return err
	}

	widths := []int{indexWidth, nameWidth, marketWidth, countWidth}
	line := separator(widths)

	var b strings.Builder
	b.WriteString(line)
	b.WriteString(header(widths, "No", "Product", "Market", "Count"))
	b.WriteString(line)
	for i, r := range records {
		fmt.Fprintf(&b, "| %*d | %-*s | %-*s | %*d |\n",
			indexWidth, i+1,
			nameWidth, fit(r.Name, nameWidth),
			marketWidth, fit(r.Market, marketWidth),
			countWidth, r.Count,
		)
		b.WriteString(line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkets writes markets in the same style as RenderProducts.
func RenderMarkets(w io.Writer, markets []model.Market) error {
	if len(markets) == 0 {
		_, err := fmt.Fprintln(w, EmptyListMessage)
		return err
	}

	widths := []int{indexWidth, marketWidth, countWidth}
	line := separator(widths)

	var b strings.Builder
	b.WriteString(line)
	b.WriteString(header(widths, "No", "Market", "ID"))
	b.WriteString(line)
	for i, m := range markets {
		fmt.Fprintf(&b, "| %*d | %-*s | %*d |\n",
			indexWidth, i+1,
			marketWidth, fit(m.Title, marketWidth),
			countWidth, m.ID,
		)
		b.WriteString(line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return "+-" + strings.Join(parts, "-+-") + "-+\n"
}

func header(widths []int, titles ...string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = center(titles[i], w)
	}
	return "| " + strings.Join(parts, " | ") + " |\n"
}

// center pads s to width; the odd space goes to the right.
func center(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func fit(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
