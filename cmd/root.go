package cmd

import (
	"fmt"
	"os"

	"github.com/fieldtally/observer-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "observer-api",
	Short: "Observer API server",
	Long: `Observer API - A multi-segment timeline and annotation engine

This API manages observation sessions over ordered video segments:
a virtual timeline with wall-clock mapping, keyboard-driven event
annotation, playback state tracking, and range analytics.

Features:
  • Multi-segment virtual timeline with wall-clock anchoring
  • Hotkey event annotation with cached display fields
  • Variable-rate bidirectional playback state machine
  • Range counts and histogram analytics
  • Session snapshot persistence and CSV export`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help output must work without a config file present.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
