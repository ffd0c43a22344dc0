package workout

import "math/rand"

// bigAssistance pairs each primary lift with its secondary barbell
// movement for the day.
var bigAssistance = map[Lift]Lift{
	Squat:         PowerClean,
	Deadlift:      FrontSquat,
	BenchPress:    InclinePress,
	OverheadPress: CloseGripBenchPress,
}

// powerCleanSchemes is the lighter scheme reserved for the power clean;
// triples year-round, backed off on the deload week.
var powerCleanSchemes = map[Week][]setScheme{
	Week1: {
		{Fraction: 0.65, Reps: 3},
		{Fraction: 0.75, Reps: 3},
		{Fraction: 0.85, Reps: 3},
	},
	Week2: {
		{Fraction: 0.65, Reps: 3},
		{Fraction: 0.75, Reps: 3},
		{Fraction: 0.85, Reps: 3},
	},
	Week3: {
		{Fraction: 0.65, Reps: 3},
		{Fraction: 0.75, Reps: 3},
		{Fraction: 0.85, Reps: 3},
	},
	Week4: {
		{Fraction: 0.5, Reps: 3},
		{Fraction: 0.6, Reps: 3},
		{Fraction: 0.7, Reps: 3},
	},
}

// assistanceSchemes is the generic big-assistance scheme: volume early in
// the cycle, heavier fives late, light fives on the deload.
var assistanceSchemes = map[Week][]setScheme{
	Week1: {
		{Fraction: 0.5, Reps: 10},
		{Fraction: 0.6, Reps: 10},
		{Fraction: 0.7, Reps: 10},
	},
	Week2: {
		{Fraction: 0.6, Reps: 8},
		{Fraction: 0.7, Reps: 8},
		{Fraction: 0.8, Reps: 6},
	},
	Week3: {
		{Fraction: 0.65, Reps: 5},
		{Fraction: 0.75, Reps: 5},
		{Fraction: 0.85, Reps: 5},
	},
	Week4: {
		{Fraction: 0.4, Reps: 5},
		{Fraction: 0.5, Reps: 5},
		{Fraction: 0.6, Reps: 5},
	},
}

// GenerateAssistanceSets prescribes the assistance work that follows the
// primary lift: three sets of the mapped big-assistance lift, scaled
// against that lift's own training max, then the primary lift's small
// accessory line(s). Accessory variants are chosen by coin flip on the
// caller's rng, so a fixed seed reproduces the exact output.
//
// Returns a *ConfigError if primary is not one of the four primary lifts
// and a *MissingTrainingMaxError if the big-assistance lift has no
// training max.
func GenerateAssistanceSets(primary Lift, week Week, maxes TrainingMaxes, rng *rand.Rand) ([]string, error) {
	assistLift, ok := bigAssistance[primary]
	if !ok {
		return nil, Configf("unsupported primary lift %s", primary)
	}
	trainingMax, ok := maxes[assistLift]
	if !ok {
		return nil, &MissingTrainingMaxError{Lift: assistLift}
	}

	schemes := assistanceSchemes[week]
	if assistLift == PowerClean {
		schemes = powerCleanSchemes[week]
	}

	var out []string
	for _, s := range schemes {
		out = append(out, renderScheme(assistLift, trainingMax, s))
	}
	out = append(out, accessoriesFor(primary, rng)...)
	return out, nil
}

// accessoriesFor picks the small accessory lines for the day. These are
// fixed-text exercises, not scaled by any training max; where two options
// exist the rng flips between them.
func accessoriesFor(primary Lift, rng *rand.Rand) []string {
	switch primary {
	case Squat:
		return []string{
			"RDLs, up to 225, 3x10",
			coinFlip(rng, "chin-ups, 2x10", "pull-ups, 2x10"),
		}
	case Deadlift:
		return []string{"overhead squat, 3x10"}
	case BenchPress:
		return []string{coinFlip(rng, "chin-ups, 3x10", "pull-ups, 3x10")}
	case OverheadPress:
		return []string{coinFlip(rng, "barbell 21s x3", "Kroc row, 3x20")}
	}
	return nil
}

func coinFlip(rng *rand.Rand, heads, tails string) string {
	if rng.Intn(2) == 0 {
		return heads
	}
	return tails
}
