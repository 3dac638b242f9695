package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSeverity(t *testing.T) {
	req := require.New(t)
	const threshold = 0.8

	tests := []struct {
		name       string
		kind       AlertKind
		confidence float64
		expected   Severity
	}{
		{"Emergency is always critical", AlertEmergency, 0, SeverityCritical},
		{"Emergency ignores confidence", AlertEmergency, 0.1, SeverityCritical},
		{"Emotion above threshold escalates", AlertEmotion, 0.95, SeverityHigh},
		{"Emotion at threshold stays medium", AlertEmotion, 0.8, SeverityMedium},
		{"Emotion below threshold stays medium", AlertEmotion, 0.4, SeverityMedium},
		{"Sign defaults to medium", AlertSign, 0.99, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, DeriveSeverity(tt.kind, tt.confidence, threshold))
		})
	}
}
