package server_test

import (
	"testing"

	"ams-coverage/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidReportFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   bool
	}{
		{"HTML", server.FormatHTML, true},
		{"JSON", server.FormatJSON, true},
		{"Invalid", "pdf", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ReportFormat: tt.format}
			assert.Equal(t, tt.want, c.IsValidReportFormat())
		})
	}
}
