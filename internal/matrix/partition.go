// Package matrix partitions the task collection into the four
// Eisenhower quadrants. Everything here is pure: buckets are derived
// on demand and never cached.
package matrix

import "github.com/alexanderramin/quadra/internal/domain"

// Buckets holds the four quadrant partitions of a task collection.
// Within each bucket, tasks keep their relative input order.
type Buckets struct {
	Do       []*domain.Task
	Plan     []*domain.Task
	Delegate []*domain.Task
	Delete   []*domain.Task
}

// Partition splits tasks into the four quadrants. Every task lands in
// exactly one bucket; an axis value exactly at the midpoint counts as
// low on that axis. An empty input yields four empty buckets.
func Partition(tasks []*domain.Task) Buckets {
	var b Buckets
	for _, t := range tasks {
		switch domain.QuadrantFor(t.Importance, t.Urgency) {
		case domain.QuadrantDo:
			b.Do = append(b.Do, t)
		case domain.QuadrantPlan:
			b.Plan = append(b.Plan, t)
		case domain.QuadrantDelegate:
			b.Delegate = append(b.Delegate, t)
		case domain.QuadrantDelete:
			b.Delete = append(b.Delete, t)
		}
	}
	return b
}

// ByQuadrant returns the bucket for the given quadrant.
func (b Buckets) ByQuadrant(q domain.Quadrant) []*domain.Task {
	switch q {
	case domain.QuadrantDo:
		return b.Do
	case domain.QuadrantPlan:
		return b.Plan
	case domain.QuadrantDelegate:
		return b.Delegate
	case domain.QuadrantDelete:
		return b.Delete
	default:
		return nil
	}
}

// Total returns the number of tasks across all four buckets.
func (b Buckets) Total() int {
	return len(b.Do) + len(b.Plan) + len(b.Delegate) + len(b.Delete)
}
