package workout

import "testing"

// TestScale pins the rounding rule: halves round away from zero, so a
// computed 162.5 prescribes 163, not 162.
func TestScale(t *testing.T) {
	cases := []struct {
		trainingMax int
		fraction    float64
		want        int
	}{
		{325, 0.4, 130},   // exact
		{325, 0.5, 163},   // 162.5 rounds up
		{325, 0.65, 211},  // 211.25 rounds down
		{325, 0.85, 276},  // 276.25 rounds down
		{135, 0.425, 57},  // 57.375 rounds down
		{100, 0.425, 43},  // 42.5 rounds up
		{205, 0.75, 154},  // 153.75 rounds up
		{365, 0.95, 347},  // 346.75 rounds up
		{0, 0.85, 0},
	}
	for _, tc := range cases {
		if got := Scale(tc.trainingMax, tc.fraction); got != tc.want {
			t.Errorf("Scale(%d, %v) = %d, want %d", tc.trainingMax, tc.fraction, got, tc.want)
		}
	}
}

// TestScaleMonotonic verifies that for a fixed training max a higher
// fraction never prescribes a lighter weight.
func TestScaleMonotonic(t *testing.T) {
	for _, trainingMax := range []int{95, 135, 225, 325, 365} {
		prev := Scale(trainingMax, 0.4)
		for fraction := 0.425; fraction <= 0.95; fraction += 0.025 {
			got := Scale(trainingMax, fraction)
			if got < prev {
				t.Errorf("Scale(%d, %v) = %d, below previous %d", trainingMax, fraction, got, prev)
			}
			prev = got
		}
	}
}

// TestSetGroupString covers the rendering rules: the set count appears
// only for multi-set groups, and AMRAP sets get a trailing "+".
func TestSetGroupString(t *testing.T) {
	cases := []struct {
		group SetGroup
		want  string
	}{
		{SetGroup{Lift: Squat, Weight: 276, Sets: 1, Reps: 5, AMRAP: true}, "squat 276 x5+"},
		{SetGroup{Lift: Squat, Weight: 130, Sets: 1, Reps: 5}, "squat 130 x5"},
		{SetGroup{Lift: OverheadPress, Weight: 95, Sets: 3, Reps: 10}, "overhead press 95 3x10"},
		{SetGroup{Lift: CloseGripBenchPress, Weight: 140, Sets: 1, Reps: 5}, "close grip bench press 140 x5"},
		{SetGroup{Lift: Deadlift, Weight: 347, Sets: 1, Reps: 1, AMRAP: true}, "deadlift 347 x1+"},
		{SetGroup{Lift: PowerClean, Weight: 133, Sets: 2, Reps: 3, AMRAP: true}, "power clean 133 2x3+"},
	}
	for _, tc := range cases {
		if got := tc.group.String(); got != tc.want {
			t.Errorf("SetGroup %+v renders %q, want %q", tc.group, got, tc.want)
		}
	}
}
