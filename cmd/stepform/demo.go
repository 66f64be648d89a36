package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mark3labs/stepform/internal/config"
	"github.com/mark3labs/stepform/internal/draft"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/tui/dialog"
	"github.com/spf13/cobra"
)

var demoFlags struct {
	failSubmit bool
	fullWidth  bool
	fresh      bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the example project setup wizard",
	Long: `Run a three-step project setup wizard in a modal dialog.

Values entered so far are saved as a draft each time a step completes,
so a half-finished wizard can be resumed. A successful submit discards
the draft.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&demoFlags.failSubmit, "fail-submit", false, "Make the final submit fail, to exercise error reporting")
	demoCmd.Flags().BoolVar(&demoFlags.fullWidth, "full-width", false, "Stretch the dialog to the terminal width")
	demoCmd.Flags().BoolVar(&demoFlags.fresh, "fresh", false, "Ignore any saved draft and start empty")
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const demoTitle = "Project Setup"

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.Default.SetLevel(level)
	}

	store := draft.NewStore(cfg.DraftDir, demoTitle)

	initial := map[string]string{}
	if !demoFlags.fresh {
		d, err := store.Load()
		if err != nil {
			logger.Warn("Ignoring unreadable draft: %v", err)
		} else if len(d.Values) > 0 {
			initial = d.Values
			logger.Info("Resuming draft saved at %s", d.SavedAt)
		}
	}

	steps := []form.Step{
		{
			Label: "Project",
			Schema: form.Schema{
				"name": {Required: true},
				"description": {
					Check: func(v string) error {
						if len(v) > 0 && len(strings.TrimSpace(v)) < 10 {
							return errors.New("description must be at least 10 characters")
						}
						return nil
					},
				},
			},
			Content: dialog.NewFieldGroup(
				dialog.NewTextField("name", "Project name", "my-project"),
				dialog.NewMultilineField("description", "Description (ctrl+e opens $EDITOR)", "What is this project about?"),
			),
		},
		{
			Label: "Owner",
			Schema: form.Schema{
				"owner": {Required: true},
				"email": {Required: true, Pattern: emailPattern, Message: "enter a valid email address"},
			},
			Content: dialog.NewFieldGroup(
				dialog.NewTextField("owner", "Owner", "Ada Lovelace"),
				dialog.NewTextField("email", "Email", "ada@example.com"),
			),
		},
		{
			Label: "Review",
			Content: dialog.NewReviewContent(
				"## Almost done\n\nCheck the values below, then press **Submit** to create the project.",
			),
		},
	}

	result, err := dialog.Run(dialog.Options{
		Title:     demoTitle,
		Steps:     steps,
		FullWidth: demoFlags.fullWidth,
		Form: form.Options{
			InitialValues:        initial,
			OnAdvance:            store.Sink,
			OnSubmit:             demoSubmit,
			DisableBackdropClose: cfg.DisableBackdropClose,
			CancelLabel:          cfg.CancelLabel,
			SubmitLabel:          cfg.SubmitLabel,
		},
	})
	if err != nil {
		return err
	}

	if result.Submitted {
		if err := store.Discard(); err != nil {
			logger.Warn("Failed to discard draft: %v", err)
		}
		fmt.Printf("Created project %q for %s\n", result.Values["name"], result.Values["email"])
		return nil
	}

	fmt.Println("Wizard cancelled. Entered values are kept as a draft.")
	return nil
}

// demoSubmit stands in for a real backend call.
func demoSubmit(ctx context.Context, values map[string]string, helpers *form.Helpers) error {
	if demoFlags.failSubmit {
		helpers.SetFieldError("email", "this address is already registered")
		helpers.SetError("Project creation failed. Fix the errors and retry.")
		return nil
	}

	logger.Info("Submitting project %q", values["name"])
	return nil
}
