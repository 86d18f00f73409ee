package store

// Seed populates a fresh store with a few sample tasks so the grid is
// not empty on first launch.
func Seed(s *TaskStore) {
	samples := []struct {
		name       string
		importance float64
		urgency    float64
	}{
		{"Submit tax return", 9, 8.5},
		{"Plan next quarter roadmap", 8, 3},
		{"Reply to vendor email", 3, 7},
		{"Sort desk drawer", 2, 2},
	}
	for _, sm := range samples {
		// Names are fixed and non-blank; Add cannot fail here.
		_, _ = s.Add(sm.name, sm.importance, sm.urgency)
	}
}
