package workout

// setScheme is one prescribed block: a fraction of the training max, a rep
// count, and whether the set is taken for max reps. All engine-generated
// blocks are single sets, so the scheme carries no set count.
type setScheme struct {
	Fraction float64
	Reps     int
	AMRAP    bool
}

// warmupSchemes holds the ramp-in sets per week. Week 4 has no warm-up
// (the deload working sets cover the same percentages), and week 1 skips
// the 60% set because the first working set at 65% is too close to it.
var warmupSchemes = map[Week][]setScheme{
	Week1: {
		{Fraction: 0.4, Reps: 5},
		{Fraction: 0.5, Reps: 5},
	},
	Week2: {
		{Fraction: 0.4, Reps: 5},
		{Fraction: 0.5, Reps: 5},
		{Fraction: 0.6, Reps: 3},
	},
	Week3: {
		{Fraction: 0.4, Reps: 5},
		{Fraction: 0.5, Reps: 5},
		{Fraction: 0.6, Reps: 3},
	},
	Week4: {},
}

// workingSchemes holds the week's three working sets in ascending
// intensity. Weeks 1-3 finish with an AMRAP set; the week-4 deload
// does not.
var workingSchemes = map[Week][]setScheme{
	Week1: {
		{Fraction: 0.65, Reps: 5},
		{Fraction: 0.75, Reps: 5},
		{Fraction: 0.85, Reps: 5, AMRAP: true},
	},
	Week2: {
		{Fraction: 0.7, Reps: 3},
		{Fraction: 0.8, Reps: 3},
		{Fraction: 0.9, Reps: 3, AMRAP: true},
	},
	Week3: {
		{Fraction: 0.75, Reps: 5},
		{Fraction: 0.85, Reps: 3},
		{Fraction: 0.95, Reps: 1, AMRAP: true},
	},
	Week4: {
		{Fraction: 0.4, Reps: 5},
		{Fraction: 0.5, Reps: 5},
		{Fraction: 0.6, Reps: 5},
	},
}

// GeneratePrimarySets prescribes the day's main work for the given lift:
// warm-up sets (if the week has any) followed by the week's three working
// sets, each rendered as a display string. Returns a
// *MissingTrainingMaxError if the lift has no training max.
func GeneratePrimarySets(lift Lift, week Week, maxes TrainingMaxes) ([]string, error) {
	trainingMax, ok := maxes[lift]
	if !ok {
		return nil, &MissingTrainingMaxError{Lift: lift}
	}

	var out []string
	for _, s := range warmupSchemes[week] {
		out = append(out, renderScheme(lift, trainingMax, s))
	}
	for _, s := range workingSchemes[week] {
		out = append(out, renderScheme(lift, trainingMax, s))
	}
	return out, nil
}

func renderScheme(lift Lift, trainingMax int, s setScheme) string {
	return SetGroup{
		Lift:   lift,
		Weight: Scale(trainingMax, s.Fraction),
		Sets:   1,
		Reps:   s.Reps,
		AMRAP:  s.AMRAP,
	}.String()
}
