// Mandelsaver is a terminal screensaver that paints the Mandelbrot set.
//
// It tours a fixed set of viewpoints, filling the terminal one glyph at a
// time on standard error, and adapts to width changes at the start of each
// row. Interrupt with Ctrl+C to exit.
//
// Usage:
//
//	mandelsaver
//	mandelsaver version
//
// Set MANDELSAVER_LOG_LEVEL to debug, info, warn or error to enable
// diagnostic logging on standard output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/mandelsaver/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mandelsaver",
	Short: "Mandelbrot set terminal screensaver",
	Long: `An endless Mandelbrot set screensaver for the terminal.

The picture is drawn cell by cell on standard error, cycling through a tour
of seven viewpoints. Terminals that advertise 256 colors (TERM containing
"256") get an 80-step color ramp; all others use the basic eight colors.

Press Ctrl+C to exit.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSaver,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mandelsaver %s\n", version.Full())
	},
}
