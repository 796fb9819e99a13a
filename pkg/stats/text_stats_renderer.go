package stats

import (
	"fmt"
	"strings"
)

type TextStatsRendererImpl struct {
}

func NewTextStatsRenderer() *TextStatsRendererImpl {
	return &TextStatsRendererImpl{}
}

func (r *TextStatsRendererImpl) RenderStats(stats Summary) (string, error) {
	var b strings.Builder
	writeSection(&b, "Total time by event name", stats.ByEventName)
	b.WriteString("\n")
	writeSection(&b, "Total time by month", stats.ByMonth)
	b.WriteString("\n")
	writeSection(&b, "Total time by day", stats.ByDay)
	return b.String(), nil
}

func writeSection(b *strings.Builder, header string, totals Totals) {
	b.WriteString(header)
	b.WriteString("\n")
	for _, total := range totals {
		fmt.Fprintf(b, " -> %s: %.2f hours\n", total.Label, total.Hours)
	}
}
