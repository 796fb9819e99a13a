package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextStatsRendererImpl_RenderStats(t *testing.T) {
	renderer := NewTextStatsRenderer()

	got, err := renderer.RenderStats(summaryFixture)

	require.NoError(t, err)
	want := `Total time by event name
 -> Planning, weekly: 1.50 hours
 -> Standup: 0.75 hours

Total time by month
 -> March-2024: 2.25 hours

Total time by day
 -> Thursday 07 March 2024: 1.75 hours
 -> Friday 08 March 2024: 0.50 hours
`
	assert.Equal(t, want, got)
}

func TestTextStatsRendererImpl_RenderEmptyStats(t *testing.T) {
	renderer := NewTextStatsRenderer()

	got, err := renderer.RenderStats(Summary{})

	require.NoError(t, err)
	assert.Equal(t, "Total time by event name\n\nTotal time by month\n\nTotal time by day\n", got)
}

func TestTextStatsRendererImpl_RoundsToTwoDecimals(t *testing.T) {
	renderer := NewTextStatsRenderer()

	got, err := renderer.RenderStats(Summary{ByEventName: Totals{{Label: "Call", Hours: 1.0 / 3}}})

	require.NoError(t, err)
	assert.Contains(t, got, " -> Call: 0.33 hours\n")
}
