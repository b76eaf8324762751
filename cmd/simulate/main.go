// Command simulate runs an arena headless with a scripted player and logs
// every enemy transition.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/level"
	"github.com/automoto/brawler/simulation"
	"github.com/automoto/brawler/systems"
)

func main() {
	arenaName := flag.String("arena", "pit", "Built-in arena name")
	enemies := flag.String("enemies", "", "YAML file with enemy type overrides")
	verbose := flag.Bool("v", false, "Log every transition and hit")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	systems.SetLogger(logger)

	if err := cfg.LoadDefaultEnemyTypes(); err != nil {
		log.Fatalf("Failed to load enemy types: %v", err)
	}
	if *enemies != "" {
		if err := cfg.LoadEnemyTypes(*enemies); err != nil {
			log.Fatalf("Failed to load enemy types: %v", err)
		}
	}

	arena, err := loadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	scenario := simulation.DefaultScenario()
	runner, err := simulation.NewRunner(arena, scenario)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "arena", arena.Name, "ticks", scenario.Ticks(), "realtime", *realtime)

	var summary simulation.Summary
	if *realtime {
		summary, err = simulation.RunRealtime(ctx, runner, cfg.C.TPS)
		if err != nil {
			logger.Info("interrupted", "tick", summary.Ticks)
		}
	} else {
		summary = runner.Run()
	}

	printSummary(summary)
}

func loadArena(name string) (*level.Arena, error) {
	arena, err := level.LoadBuiltin(name)
	if err == nil {
		return arena, nil
	}
	names, _ := level.BuiltinNames()
	return nil, fmt.Errorf("%w (built-in arenas: %v)", err, names)
}

func printSummary(s simulation.Summary) {
	fmt.Printf("ticks: %d\n", s.Ticks)
	fmt.Printf("player health: %.0f\n", s.PlayerHealth)

	ids := make([]string, 0, len(s.Enemies))
	for id := range s.Enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("enemy %s: %s\n", id, s.Enemies[id])
	}
	for name, n := range s.Kills {
		fmt.Printf("killed %s: %d\n", name, n)
	}
}
