package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/tensor"
)

type sweepConfig struct {
	Seeds      []uint64
	Epochs     int
	LR         float64
	Stochastic bool
	Jobs       int
}

type sweepResult struct {
	Seed        uint64
	InitialLoss float64
	FinalLoss   float64
}

func parseSweepFlags(args []string) (sweepConfig, error) {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	seeds := fs.String("seeds", "1,2,3", "Comma-separated seeds")
	epochs := fs.Int("epochs", 5000, "Training epochs per seed")
	lr := fs.Float64("lr", 0.05, "Learning rate")
	stochastic := fs.Bool("stochastic", false, "Update after every example")
	jobs := fs.Int("jobs", runtime.GOMAXPROCS(0), "Networks trained concurrently")
	if err := fs.Parse(args); err != nil {
		return sweepConfig{}, err
	}

	cfg := sweepConfig{
		Epochs:     *epochs,
		LR:         *lr,
		Stochastic: *stochastic,
		Jobs:       *jobs,
	}
	for _, s := range strings.Split(*seeds, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return sweepConfig{}, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		cfg.Seeds = append(cfg.Seeds, seed)
	}
	if len(cfg.Seeds) == 0 {
		return sweepConfig{}, fmt.Errorf("no seeds given")
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}

func runSweep(ctx context.Context, args []string) error {
	cfg, err := parseSweepFlags(args)
	if err != nil {
		return err
	}

	log.Println("sweep started", "seeds", len(cfg.Seeds), "jobs", cfg.Jobs)
	defer log.Println("sweep finished")

	results, err := sweep(ctx, cfg)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("seed=%d initial=%.6f final=%.6f\n", r.Seed, r.InitialLoss, r.FinalLoss)
	}
	return nil
}

// sweep trains one independent XOR network per seed. Results keep the
// order of cfg.Seeds.
func sweep(ctx context.Context, cfg sweepConfig) ([]sweepResult, error) {
	results := make([]sweepResult, len(cfg.Seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)

	for i, seed := range cfg.Seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := trainSeed(seed, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func trainSeed(seed uint64, cfg sweepConfig) (sweepResult, error) {
	net, err := nn.New(seed, []nn.LayerSpec{
		nn.Dense(2, nn.Linear()),
		nn.Dense(8, nn.Tanh()),
		nn.Dense(8, nn.Tanh()),
		nn.Dense(1, nn.Sigmoid()),
	})
	if err != nil {
		return sweepResult{}, err
	}

	features := []*tensor.Vector{
		tensor.MustVector(0, 0),
		tensor.MustVector(0, 1),
		tensor.MustVector(1, 0),
		tensor.MustVector(1, 1),
	}
	labels := []*tensor.Vector{
		tensor.MustVector(0),
		tensor.MustVector(1),
		tensor.MustVector(1),
		tensor.MustVector(0),
	}

	initial, err := net.Evaluate(features, labels)
	if err != nil {
		return sweepResult{}, err
	}
	if _, err := net.Train(features, labels, nn.TrainConfig{
		LearningRate: cfg.LR,
		Epochs:       cfg.Epochs,
		Stochastic:   cfg.Stochastic,
	}); err != nil {
		return sweepResult{}, err
	}
	final, err := net.Evaluate(features, labels)
	if err != nil {
		return sweepResult{}, err
	}

	return sweepResult{Seed: seed, InitialLoss: sum(initial), FinalLoss: sum(final)}, nil
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}
