package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pillarrun/internal/config"
	"pillarrun/internal/runner"
)

var (
	flagSeconds float64
	flagRuns    int
	flagJitter  float32
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Play runs without a window, steering with a simple autopilot, and
report how far each run got and how long a frame of game logic takes.
Useful for checking a tunables file before playing it.

Examples:
  pillarrun simulate
  pillarrun simulate --runs 10 --jitter 0.1
  pillarrun simulate --config ./hard.yaml --seconds 300`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Game time per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simulateCmd.Flags().Float32Var(&flagJitter, "jitter", 0.05, "Relative error on every span length")
}

type simResult struct {
	score, transitions, hp int
	over                   bool
	gameTime               float64
	frameTime              time.Duration
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading tunables: %w", err)
	}
	rng, seed := newRand()
	logger.Info("simulating", "runs", flagRuns, "seconds", flagSeconds, "seed", seed)

	session := runner.NewSession(cfg, runner.WithRand(rng), runner.WithLogger(logger))
	out := cmd.OutOrStdout()
	for i := 0; i < flagRuns; i++ {
		if i > 0 {
			session.Replay()
		}
		r := simulate(session, runner.NewAutopilot(session, rng))
		status := "alive"
		if r.over {
			status = "over"
		}
		fmt.Fprintf(out, "run %2d: score %4d | pillars %3d | hp %d | %-5s after %6.1fs | %v/frame\n",
			i+1, r.score, r.transitions, r.hp, status, r.gameTime, r.frameTime.Round(time.Microsecond/10))
	}
	return nil
}

// simulate steps one run at a fixed 60 Hz until it ends or time runs out.
func simulate(session *runner.Session, pilot *runner.Autopilot) simResult {
	const dt = float32(1.0 / 60)
	pilot.Jitter = flagJitter
	frames := int(flagSeconds * 60)

	start := time.Now()
	n := 0
	for ; n < frames && !session.State().Over(); n++ {
		session.Update(dt, pilot.Next())
	}
	elapsed := time.Since(start)

	st := session.State()
	r := simResult{
		score:       st.Score(),
		transitions: st.Transitions(),
		hp:          st.HP(),
		over:        st.Over(),
		gameTime:    float64(n) / 60,
	}
	if n > 0 {
		r.frameTime = elapsed / time.Duration(n)
	}
	return r
}
