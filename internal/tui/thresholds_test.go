package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreshold_DiskUsed(t *testing.T) {
	cases := []struct {
		pct  float64
		want severity
	}{
		{0, severityNormal},
		{79, severityNormal},
		{80, severityNormal}, // boundary: >80 triggers warning
		{80.1, severityWarning},
		{89, severityWarning},
		{90, severityWarning}, // boundary: >90 triggers critical
		{90.1, severityCritical},
		{100, severityCritical},
	}
	for _, tc := range cases {
		got := diskUsedSeverity(tc.pct)
		if got != tc.want {
			t.Errorf("diskUsedSeverity(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestThreshold_ErrorShare(t *testing.T) {
	cases := []struct {
		pct  float64
		want severity
	}{
		{0, severityNormal},
		{5, severityNormal},
		{5.1, severityWarning},
		{20, severityWarning},
		{20.1, severityCritical},
		{100, severityCritical},
	}
	for _, tc := range cases {
		got := errorShareSeverity(tc.pct)
		if got != tc.want {
			t.Errorf("errorShareSeverity(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestSeverityFg(t *testing.T) {
	assert.Equal(t, colorWhite, severityFg(severityNormal))
	assert.Equal(t, colorYellow, severityFg(severityWarning))
	assert.Equal(t, colorRed, severityFg(severityCritical))
}
