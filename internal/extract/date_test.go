package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"day first slash", "Invoice Date: 05/08/2024", "2024-08-05"},
		{"day first dash", "Dated 5-9-2024", "2024-09-05"},
		{"day first dot", "31.12.2024", "2024-12-31"},
		{"year first", "Date 2024/02/29 ref 77", "2024-02-29"},
		{"textual month", "12 Jan 2024", "2024-01-12"},
		{"textual long month", "5 September 2023", "2023-09-05"},
		{"textual two digit year", "12 Mar 24", "2024-03-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.text))
		})
	}
}

func TestDateDefaultsToToday(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, Date("no date in here"))
	// Two-digit years without a textual month cannot be resolved by the
	// numeric patterns and fall through to the default.
	assert.Equal(t, today, Date("31.12.23"))
}
