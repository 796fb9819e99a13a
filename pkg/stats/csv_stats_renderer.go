package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const (
	sectionEventName = "event"
	sectionMonth     = "month"
	sectionDay       = "day"
)

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (t *CsvStatsRendererImpl) RenderStats(stats Summary) (string, error) {
	data := make([][]string, 0, 1+len(stats.ByEventName)+len(stats.ByMonth)+len(stats.ByDay))
	data = append(data, []string{"section", "label", "hours"})
	data = append(data, sectionRows(sectionEventName, stats.ByEventName)...)
	data = append(data, sectionRows(sectionMonth, stats.ByMonth)...)
	data = append(data, sectionRows(sectionDay, stats.ByDay)...)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func sectionRows(section string, totals Totals) [][]string {
	rows := make([][]string, 0, len(totals))
	for _, total := range totals {
		rows = append(rows, []string{section, total.Label, hoursToString(total.Hours)})
	}
	return rows
}

func hoursToString(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
