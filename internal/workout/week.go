package workout

import "fmt"

// Week is a position in the 4-week 5/3/1 cycle: three ramping weeks
// followed by a deload week.
type Week int

const (
	Week1 Week = 1
	Week2 Week = 2
	Week3 Week = 3
	Week4 Week = 4
)

// AllWeeks returns the four cycle weeks in order.
func AllWeeks() []Week {
	return []Week{Week1, Week2, Week3, Week4}
}

// IsDeload reports whether the week is the reduced-intensity recovery week.
func (w Week) IsDeload() bool { return w == Week4 }

func (w Week) String() string { return fmt.Sprintf("week %d", int(w)) }

// ParseWeek resolves "1".."4" to a Week. Returns false for anything else.
func ParseWeek(raw string) (Week, bool) {
	switch raw {
	case "1":
		return Week1, true
	case "2":
		return Week2, true
	case "3":
		return Week3, true
	case "4":
		return Week4, true
	}
	return 0, false
}
