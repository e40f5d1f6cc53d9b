package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/scheduler"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snake",
	Short:         "snake plays a game of snake in your terminal",
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args: func(c *cobra.Command, args []string) error {
		return validateFlags()
	},
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		return play()
	},
}

var (
	width            = config.GridWidth
	height           = config.GridHeight
	updatesPerSecond = config.UpdatesPerSecond
	length           = config.SnakeLength
	maxCatchUp       = config.MaxCatchUp
	policyName       = string(scheduler.PolicyStep)
	logLevel         = log.InfoLevel.String()

	policy scheduler.Policy
)

func init() {
	rootCmd.Flags().IntVarP(&width, "width", "W", width, "grid width in cells")
	rootCmd.Flags().IntVarP(&height, "height", "H", height, "grid height in cells")
	rootCmd.Flags().IntVarP(&updatesPerSecond, "speed", "s", updatesPerSecond, "snake updates per second")
	rootCmd.Flags().IntVarP(&length, "length", "l", length, "starting snake length")
	rootCmd.Flags().StringVar(&policyName, "policy", policyName, "what to do when the loop falls behind: step, catch-up or drop")
	rootCmd.Flags().IntVar(&maxCatchUp, "max-catch-up", maxCatchUp, "most updates run in one iteration by the catch-up policy")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateFlags() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(level)

	policy, err = scheduler.ParsePolicy(policyName)
	if err != nil {
		return errors.Wrap(err, "invalid --policy")
	}
	if updatesPerSecond <= 0 {
		return errors.Errorf("invalid --speed %d: must be positive", updatesPerSecond)
	}
	if maxCatchUp <= 0 {
		return errors.Errorf("invalid --max-catch-up %d: must be positive", maxCatchUp)
	}
	return nil
}
