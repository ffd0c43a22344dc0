package workout

import (
	"fmt"
	"math"
	"strings"
)

// SetGroup is one block of identical sets for a lift. It exists only to be
// rendered; nothing keeps a SetGroup past its String call.
type SetGroup struct {
	Lift   Lift
	Weight int
	Sets   int
	Reps   int
	AMRAP  bool // last set is "as many reps as possible"
}

// String renders the group as "<lift> <weight> [<sets>]x<reps>[+]".
// The set count is omitted when there is a single set, so one set of five
// reads "x5" rather than "1x5". A trailing "+" marks an AMRAP set.
func (g SetGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d ", g.Lift, g.Weight)
	if g.Sets > 1 {
		fmt.Fprintf(&b, "%d", g.Sets)
	}
	fmt.Fprintf(&b, "x%d", g.Reps)
	if g.AMRAP {
		b.WriteString("+")
	}
	return b.String()
}

// Scale multiplies a training max by a fraction and rounds to the nearest
// whole weight, halves away from zero: Scale(325, 0.5) is 163, not 162.
func Scale(trainingMax int, fraction float64) int {
	return int(math.Round(float64(trainingMax) * fraction))
}
