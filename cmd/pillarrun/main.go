// pillarrun is a 3D bridge-building runner: hold to grow a span, let go to
// drop it across the gap, walk to the next pillar.
//
// Usage:
//
//	pillarrun                 - Play (same as "pillarrun play")
//	pillarrun play            - Open the game window
//	pillarrun scores          - Show the best recorded runs
//	pillarrun tunables        - Print the effective tunables as YAML
//	pillarrun simulate        - Run the game headless with an autopilot
//
// Global flags:
//
//	--config <path>  - Tunables file (default: search ~/.pillarrun, ./configs)
//	--db <path>      - Scores database (default: ~/.pillarrun/scores.db)
//	--seed <value>   - RNG seed for reproducible levels
//	--debug          - Verbose logging and the debug overlay
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pillarrun/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pillarrun",
	Short: "Pillar Run - build bridges between pillars",
	Long: `Pillar Run is a small 3D runner. Hold the build key to grow a span,
release it to drop the span across the gap and walk to the next pillar.
Traps ride on the spans, power-ups wait on the pillars.

Available commands:
  play      - Open the game window (default)
  scores    - View the best runs
  tunables  - Print the effective tunables
  simulate  - Run headless with an autopilot

Examples:
  pillarrun
  pillarrun play --watch
  pillarrun scores --limit 5
  pillarrun tunables > ~/.pillarrun/tunables.yaml
  pillarrun simulate --seconds 120 --seed 42`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tunables YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and overlay")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tunablesCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pillarrun",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newRand() (*rand.Rand, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
