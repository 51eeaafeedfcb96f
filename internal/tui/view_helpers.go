package tui

import (
	"strings"
)

const emptyValue = "-"

func renderPage(title, data string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if strings.TrimSpace(data) == "" {
		data = emptyValue
	}
	b.WriteString(data)

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return emptyValue
	}
	return v
}

// fitText shortens v to max runes, keeping the tail: for paths the file name
// is the interesting part.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[len(r)-max:])
	}
	return "..." + string(r[len(r)-max+3:])
}
