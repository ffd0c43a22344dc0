package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"liftday/internal/store"
	"liftday/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const usage = `Usage: liftday-tm [-db <dir>] <command>

Commands:
  list                 print all stored training maxes
  set <lift> <max>     store the training max for a lift
  next-cycle           apply standard 5/3/1 increments (+10 squat/deadlift, +5 presses)
`

func main() {
	dbDir := flag.String("db", "", "store directory (default ~/.liftday)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftday-tm", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if *dbDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		*dbDir = filepath.Join(homeDir, ".liftday")
	}

	db, err := store.Open(*dbDir)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	switch flag.Arg(0) {
	case "list":
		err = list(db)
	case "set":
		err = set(db, flag.Args()[1:])
	case "next-cycle":
		err = nextCycle(db, log)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		log.Error("command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func list(db *store.DB) error {
	maxes, err := db.All()
	if err != nil {
		return err
	}
	if len(maxes) == 0 {
		fmt.Println("no training maxes stored")
		return nil
	}

	lifts := make([]string, 0, len(maxes))
	for lift := range maxes {
		lifts = append(lifts, string(lift))
	}
	sort.Strings(lifts)
	for _, lift := range lifts {
		fmt.Printf("  %-24s %d\n", lift, maxes[workout.Lift(lift)])
	}
	return nil
}

func set(db *store.DB, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("set needs a lift and a max, e.g. set squat 325")
	}
	lift, ok := workout.ParseLift(args[0])
	if !ok {
		return fmt.Errorf("unknown lift %q", args[0])
	}
	max, err := strconv.Atoi(args[1])
	if err != nil || max <= 0 {
		return fmt.Errorf("training max must be a positive integer, got %q", args[1])
	}
	if err := db.Set(lift, max); err != nil {
		return err
	}
	fmt.Printf("  %s = %d\n", lift, max)
	return nil
}

func nextCycle(db *store.DB, log *slog.Logger) error {
	id, err := db.NextCycle()
	if err != nil {
		return err
	}
	log.Info("applied next-cycle increments", "cycle", id)
	return list(db)
}
