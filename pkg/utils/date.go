package utils

import (
	"fmt"
	"time"
)

// LongDateLayout gera datas como "March 5, 2025"
const LongDateLayout = "January 2, 2006"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp aceita RFC3339 ou apenas a data (yyyy-mm-dd), sempre em UTC
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}

// FormatLongDate formata a data por extenso em UTC. Retorna nil quando a data não existe.
func FormatLongDate(date *time.Time) *string {
	if date == nil {
		return nil
	}

	formatted := date.UTC().Format(LongDateLayout)
	return &formatted
}
