package domain

type Quadrant string

const (
	QuadrantDo       Quadrant = "do"
	QuadrantPlan     Quadrant = "plan"
	QuadrantDelegate Quadrant = "delegate"
	QuadrantDelete   Quadrant = "delete"
)

// Quadrants lists the four quadrants in canonical display order:
// urgent+important first, neither last.
var Quadrants = []Quadrant{QuadrantDo, QuadrantPlan, QuadrantDelegate, QuadrantDelete}

// Label returns the short display name for the quadrant.
func (q Quadrant) Label() string {
	switch q {
	case QuadrantDo:
		return "Do"
	case QuadrantPlan:
		return "Plan"
	case QuadrantDelegate:
		return "Delegate"
	case QuadrantDelete:
		return "Delete"
	default:
		return string(q)
	}
}

// Describe returns the axis reading behind the quadrant, used in
// headings and in the summarization prompt.
func (q Quadrant) Describe() string {
	switch q {
	case QuadrantDo:
		return "urgent and important"
	case QuadrantPlan:
		return "important, not urgent"
	case QuadrantDelegate:
		return "urgent, not important"
	case QuadrantDelete:
		return "neither urgent nor important"
	default:
		return ""
	}
}

// QuadrantFor classifies one pair of axis values. The midpoint itself
// always reads as low: a 5.0 on either axis is not "high" on that axis.
func QuadrantFor(importance, urgency float64) Quadrant {
	important := importance > AxisMidpoint
	urgent := urgency > AxisMidpoint
	switch {
	case important && urgent:
		return QuadrantDo
	case important:
		return QuadrantPlan
	case urgent:
		return QuadrantDelegate
	default:
		return QuadrantDelete
	}
}
