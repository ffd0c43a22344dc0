// Package config loads the training-max file, the only configuration the
// tool has.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"liftday/internal/workout"
)

// maxReasonableWeight guards against typos like an extra digit. The engine
// itself does not care; this is a courtesy check at the boundary.
const maxReasonableWeight = 1500

// file is the on-disk shape of the training-max file:
//
//	training_maxes:
//	  squat: 325
//	  bench_press: 235
//
// Keys accept any lift alias (e.g. "bp", "ohp", "close_grip_bench_press").
type file struct {
	TrainingMaxes map[string]int `yaml:"training_maxes"`
}

// Load reads the training-max file and resolves it to a lift-keyed table.
// Any failure (unreadable file, bad YAML, unknown lift name, out-of-range
// weight) comes back as a *workout.ConfigError wrapped with file context.
func Load(path string) (workout.TrainingMaxes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading training max file: %w",
			workout.Configf("%v", err))
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path,
			workout.Configf("%v", err))
	}
	if len(f.TrainingMaxes) == 0 {
		return nil, fmt.Errorf("%s: %w", path,
			workout.Configf("no training_maxes section"))
	}

	maxes := make(workout.TrainingMaxes, len(f.TrainingMaxes))
	for name, weight := range f.TrainingMaxes {
		lift, ok := workout.ParseLift(name)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path,
				workout.Configf("unknown lift %q", name))
		}
		if weight <= 0 || weight > maxReasonableWeight {
			return nil, fmt.Errorf("%s: %w", path,
				workout.Configf("training max for %s out of range: %d", lift, weight))
		}
		maxes[lift] = weight
	}
	return maxes, nil
}
