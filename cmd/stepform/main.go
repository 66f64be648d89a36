package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀ ▀█▀ █▀▀ █▀█ █▀▀ █▀█ █▀█ █▄█"
	logoText2 = "▄█  █  ██▄ █▀▀ █▀  █▄█ █▀▄ █ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stepform",
	Short: "Multi-step form wizards for the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

stepform renders multi-step form wizards in a modal terminal dialog:
step sequencing with completion tracking, per-step validation that
gates the primary action, and asynchronous submission with field-level
error reporting. Step content, value drafts, and labels are all
configurable.`

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}
