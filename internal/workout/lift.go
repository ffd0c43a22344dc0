// Package workout is the set-prescription engine: given a primary lift, a
// cycle week, and a table of training maxes, it produces the day's
// prescribed sets as display strings. It does no I/O; config loading and
// printing live with the callers.
package workout

import "strings"

// Lift identifies a barbell or accessory movement. The value is the
// canonical lowercase display phrase used in all rendered output.
type Lift string

const (
	// Primary lifts.
	Squat         Lift = "squat"
	BenchPress    Lift = "bench press"
	Deadlift      Lift = "deadlift"
	OverheadPress Lift = "overhead press"

	// Big assistance lifts.
	FrontSquat          Lift = "front squat"
	OverheadSquat       Lift = "overhead squat"
	BulgarianSplitSquat Lift = "bulgarian split squat"
	GoodMorning         Lift = "good morning"
	StraightLegDeadlift Lift = "straight leg deadlift"
	RomanianDeadlift    Lift = "romanian deadlift"
	RackDeadlift        Lift = "rack deadlift"
	PowerClean          Lift = "power clean"
	PowerSnatch         Lift = "power snatch"
	CloseGripBenchPress Lift = "close grip bench press"
	InclinePress        Lift = "incline press"
)

// liftAliases maps lowercased config/CLI spellings to lifts. Every lift's
// canonical display phrase also resolves, so config files can use either.
var liftAliases = map[string]Lift{
	"squat": Squat,
	"s":     Squat,

	"bench_press": BenchPress,
	"b":           BenchPress,
	"bp":          BenchPress,

	"deadlift": Deadlift,
	"d":        Deadlift,
	"dl":       Deadlift,

	"overhead_press": OverheadPress,
	"o":              OverheadPress,
	"p":              OverheadPress,
	"ohp":            OverheadPress,

	"front_squat": FrontSquat,
	"fs":          FrontSquat,

	"overhead_squat": OverheadSquat,
	"os":             OverheadSquat,
	"ohs":            OverheadSquat,

	"bulgarian_split_squat": BulgarianSplitSquat,
	"bss":                   BulgarianSplitSquat,

	"good_morning": GoodMorning,
	"gm":           GoodMorning,

	"straight_leg_deadlift": StraightLegDeadlift,
	"sldl":                  StraightLegDeadlift,

	"romanian_deadlift": RomanianDeadlift,
	"rdl":               RomanianDeadlift,

	"rack_deadlift": RackDeadlift,
	"radl":          RackDeadlift,

	"power_clean": PowerClean,
	"pc":          PowerClean,

	"power_snatch": PowerSnatch,
	"ps":           PowerSnatch,

	"close_grip_bench_press": CloseGripBenchPress,
	"cgbp":                   CloseGripBenchPress,

	"incline_press": InclinePress,
	"ip":            InclinePress,
}

func init() {
	for _, lift := range AllLifts() {
		liftAliases[string(lift)] = lift
	}
}

// AllLifts returns every known lift.
func AllLifts() []Lift {
	return []Lift{
		Squat, BenchPress, Deadlift, OverheadPress,
		FrontSquat, OverheadSquat, BulgarianSplitSquat,
		GoodMorning, StraightLegDeadlift, RomanianDeadlift, RackDeadlift,
		PowerClean, PowerSnatch,
		CloseGripBenchPress, InclinePress,
	}
}

// PrimaryLifts returns the four lifts that can anchor a training day.
func PrimaryLifts() []Lift {
	return []Lift{Squat, BenchPress, Deadlift, OverheadPress}
}

// IsPrimary reports whether the lift is one of the four primary lifts.
func (l Lift) IsPrimary() bool {
	switch l {
	case Squat, BenchPress, Deadlift, OverheadPress:
		return true
	}
	return false
}

// String returns the canonical display phrase.
func (l Lift) String() string { return string(l) }

// ParseLift resolves a possibly-abbreviated lift name ("bp", "ohp",
// "front_squat", "bench press", ...) to its Lift. Lookup is
// case-insensitive and ignores surrounding whitespace. Returns false
// if the name is unknown.
func ParseLift(raw string) (Lift, bool) {
	lift, ok := liftAliases[strings.ToLower(strings.TrimSpace(raw))]
	return lift, ok
}

// TrainingMaxes maps each trained lift to its training max, the reference
// weight (typically ~90% of a true 1RM) all prescriptions scale from.
// Only lifts the user actually trains need an entry.
type TrainingMaxes map[Lift]int
