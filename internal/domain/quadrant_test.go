package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadrantFor(t *testing.T) {
	tests := []struct {
		name       string
		importance float64
		urgency    float64
		want       Quadrant
	}{
		{"both high", 8, 8, QuadrantDo},
		{"important only", 8, 2, QuadrantPlan},
		{"urgent only", 2, 8, QuadrantDelegate},
		{"both low", 2, 2, QuadrantDelete},
		{"midpoint importance routes low", 5.0, 8, QuadrantDelegate},
		{"midpoint urgency routes low", 8, 5.0, QuadrantPlan},
		{"double midpoint routes low on both", 5.0, 5.0, QuadrantDelete},
		{"just above midpoint is high", 5.5, 5.5, QuadrantDo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuadrantFor(tt.importance, tt.urgency))
		})
	}
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, AxisMin, ClampAxis(0))
	assert.Equal(t, AxisMax, ClampAxis(11))
	assert.Equal(t, 7.5, ClampAxis(7.5))
}

func TestQuadrantLabels(t *testing.T) {
	for _, q := range Quadrants {
		assert.NotEmpty(t, q.Label())
		assert.NotEmpty(t, q.Describe())
	}
}
