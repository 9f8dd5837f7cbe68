// Command hollowmaze loads a maze layout, solves it, and reports the escape
// path together with the collected loot.
//
// Usage:
//
//	hollowmaze -maze mazes/sample.txt [-config run.yaml] [-capacity 20] [-seed 42]
//
// Configuration precedence: defaults < YAML config < .env / environment
// (HOLLOWMAZE_*) < flags.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/hollowmaze/maze"
	"github.com/katalvlaran/hollowmaze/treasure"
)

func main() {
	mazePath := flag.String("maze", "", "path to the maze layout file (required)")
	configPath := flag.String("config", "", "optional YAML config file")
	capacity := flag.Int64("capacity", -1, "backpack capacity (overrides config)")
	seed := flag.Int64("seed", -1, "treasure generation seed (overrides config)")
	perHollow := flag.Int("treasures", -1, "treasures per hollow (overrides config)")
	verbose := flag.Bool("v", false, "log every visited cell")
	flag.Parse()

	if *mazePath == "" {
		flag.Usage()
		log.Fatal("missing required -maze flag")
	}

	// .env is optional; absence is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("skipping .env")
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadYAML(*configPath, &cfg); err != nil {
			log.WithError(err).Fatal("loading config")
		}
	}
	applyEnv(&cfg)
	if *capacity >= 0 {
		cfg.Capacity = *capacity
	}
	if *seed >= 0 {
		cfg.Seed = *seed
	}
	if *perHollow > 0 {
		cfg.TreasuresPerHollow = *perHollow
	}

	gen, err := treasure.NewGenerator(
		treasure.WithSeed(cfg.Seed),
		treasure.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
		treasure.WithValueRange(cfg.MinValue, cfg.MaxValue),
	)
	if err != nil {
		log.WithError(err).Fatal("building treasure generator")
	}

	m, err := maze.LoadFile(*mazePath,
		maze.WithGenerator(gen),
		maze.WithTreasuresPerHollow(cfg.TreasuresPerHollow),
	)
	if err != nil {
		log.WithError(err).Fatal("loading maze")
	}
	log.WithFields(log.Fields{
		"rows":  m.Rows(),
		"cols":  m.Cols(),
		"exits": len(m.Exits()),
	}).Info("maze loaded")

	opts := []maze.SolveOption{maze.WithCapacity(cfg.Capacity)}
	if *verbose {
		opts = append(opts, maze.WithOnVisit(func(p maze.Position) error {
			log.WithField("cell", p.String()).Debug("visit")
			return nil
		}))
		log.SetLevel(log.DebugLevel)
	}

	res, err := m.Solve(opts...)
	if errors.Is(err, maze.ErrNoPath) {
		log.Warn("no path from the entrance to any exit")
		os.Exit(1)
	}
	if err != nil {
		log.WithError(err).Fatal("solving maze")
	}

	log.WithFields(log.Fields{
		"steps":     len(res.Path),
		"loot":      len(res.Loot),
		"weight":    res.TotalWeight(),
		"value":     res.TotalValue(),
		"remaining": res.Remaining,
	}).Info("maze solved")

	for _, p := range res.Path {
		log.WithField("cell", p.String()).Debug("path")
	}
	for id, t := range res.LootByID() {
		log.WithFields(log.Fields{
			"id":     id,
			"weight": t.Weight,
			"value":  t.Value,
		}).Info("collected")
	}
}
