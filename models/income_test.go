package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Source
	}{
		{"Known source", "Salary", SourceSalary},
		{"Known source - Investment", "Investment", SourceInvestment},
		{"Explicit other", "Other", SourceOther},
		{"Unknown value falls back", "Lottery", SourceOther},
		{"Empty falls back", "", SourceOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSource(tt.raw))
		})
	}
}
