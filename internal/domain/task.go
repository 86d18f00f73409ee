package domain

import "time"

// Axis scale bounds. Both priority axes are scored on a continuous
// 1–10 scale in half-point steps.
const (
	AxisMin      = 1.0
	AxisMax      = 10.0
	AxisMidpoint = 5.0
)

// Task is a single entry on the priority grid. Tasks are immutable
// after creation; identity is the ID.
type Task struct {
	ID         string
	Name       string
	Importance float64
	Urgency    float64
	CreatedAt  time.Time
}

// ClampAxis snaps a raw axis value into [AxisMin, AxisMax].
func ClampAxis(v float64) float64 {
	if v < AxisMin {
		return AxisMin
	}
	if v > AxisMax {
		return AxisMax
	}
	return v
}
