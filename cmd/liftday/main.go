package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"liftday/internal/config"
	"liftday/internal/routine"
	"liftday/internal/store"
	"liftday/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	liftName := flag.String("lift", "", `primary lift for the day: "squat"/"s", "bench_press"/"bp", "deadlift"/"dl", "overhead_press"/"ohp"`)
	weekNum := flag.String("week", "", "week number (1-4) in the 5/3/1 cycle")
	configPath := flag.String("config", "training_max.yaml", "path to training max file")
	storeDir := flag.String("store", "", "directory of the training max store (overrides -config)")
	seed := flag.Int64("seed", 0, "random seed for accessory and core choices (0 = time-derived)")
	coreCount := flag.Int("core", 2, "number of core exercises to sample")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftday", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *liftName == "" || *weekNum == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftday -lift <lift> -week <1-4> [-config training_max.yaml] [-store <dir>] [-seed N] [-core N]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lift, ok := workout.ParseLift(*liftName)
	if !ok {
		log.Error("unknown lift", "lift", *liftName)
		os.Exit(1)
	}
	if !lift.IsPrimary() {
		log.Error("lift is not a primary lift", "lift", lift.String())
		os.Exit(1)
	}
	week, ok := workout.ParseWeek(*weekNum)
	if !ok {
		log.Error("week must be 1-4", "week", *weekNum)
		os.Exit(1)
	}

	maxes, err := loadTrainingMaxes(*configPath, *storeDir)
	if err != nil {
		log.Error("failed to load training maxes", "error", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	primarySets, err := workout.GeneratePrimarySets(lift, week, maxes)
	if err != nil {
		log.Error("failed to generate primary sets", "error", err)
		os.Exit(1)
	}
	assistanceSets, err := workout.GenerateAssistanceSets(lift, week, maxes, rng)
	if err != nil {
		log.Error("failed to generate assistance sets", "error", err)
		os.Exit(1)
	}

	printSection("Warm-up", routine.WarmUp)
	printSection("Limber 11", routine.Limber11)
	printSection("Primary lift", primarySets)
	printSection("Assistance lifts", assistanceSets)
	printSection("Core", routine.SampleCore(rng, *coreCount))
}

// loadTrainingMaxes reads the store when -store is given, otherwise the
// YAML file.
func loadTrainingMaxes(configPath, storeDir string) (workout.TrainingMaxes, error) {
	if storeDir == "" {
		return config.Load(configPath)
	}

	db, err := store.Open(storeDir)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.All()
}

func printSection(header string, lines []string) {
	fmt.Printf("%s\n====================\n", header)
	for _, line := range lines {
		fmt.Printf("  %s\n", line)
	}
	fmt.Print("\n\n")
}
