// Package routine holds the fixed parts of a training day: the general
// warm-up, the Limber 11 mobility sequence, and the core exercise pool.
package routine

import "math/rand"

// WarmUp never changes.
var WarmUp = []string{
	"5min jump rope, jog, row, or bike",
	"2x15 box jumps",
}

// Limber11 is done after the warm-up and before the barbell work.
var Limber11 = []string{
	"1. foam roll IT band, 15x/leg",
	"2. foam roll adductor, 15x/leg",
	"3. lacrosse ball glutes and piriformis, 60s/leg",
	"4. bent-knee iron cross, 10x/side",
	"5. rollover into V-sit, 10x",
	"6. rocking frog, 10x",
	"7. fire hydrant circles, 10x/direction/leg",
	"8. mountain climbers, 10x/leg",
	"9. Cossack squats, 10x/side",
	"10. seated piriforis stretch, 30s/side",
	"11. rear-foot-elevated hip flexor stretch, 10x/side",
}

// CoreExercises is the pool SampleCore draws from.
var CoreExercises = []string{
	"ab-mat sit-up, 3x10",
	"bird dog, 3x10/side",
	"windshield wipers, 3x10/side",
	"kayaker, 3x10/side",
	"power point 3x30s/side",
	"bridge 3x10s/side",
	"gymnast L-sit, 3x10s",
	"side plank, 3x10/side",
	"Turkish get-up, 3x3/side",
	"band torso twist, 3x10/side",
}

// SampleCore draws n distinct core exercises using the caller's rng, so a
// fixed seed reproduces the same draw. n is clamped to the pool size;
// n <= 0 yields nil.
func SampleCore(rng *rand.Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(CoreExercises) {
		n = len(CoreExercises)
	}

	picked := make([]string, 0, n)
	for _, i := range rng.Perm(len(CoreExercises))[:n] {
		picked = append(picked, CoreExercises[i])
	}
	return picked
}
