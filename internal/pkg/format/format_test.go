package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole amount", amount: 500, want: "KSh 500.00"},
		{name: "cents", amount: 0.01, want: "KSh 0.01"},
		{name: "grouped thousands", amount: 1234567.5, want: "KSh 1,234,567.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount))
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	got := Timestamp(ts)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "2025")

	assert.Empty(t, Timestamp(time.Time{}))
}
