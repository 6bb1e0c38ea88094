package formatter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatterFormatReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().FormatReport(&buf, sampleReport(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Emotion", "Count", "Percentage", "Progress", "Today"},
		{"Happy", "2", "50.0", "100", "2"},
		{"Tired", "1", "25.0", "50", "0"},
		{"Sad", "1", "25.0", "50", "1"},
		{"Total", "4", "", "", "3"},
	}, records)
}

func TestCSVFormatterFormatLogs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().FormatLogs(&buf, sampleLogs(t)[:2], time.UTC))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Emotion", "Recorded At", "Timestamp"}, records[0])
	assert.Equal(t, []string{"id-1", "Tired", "Jan 14, 2024 20:00:00", "1705262400000"}, records[1])
	assert.Equal(t, "Happy", records[2][1])
}
