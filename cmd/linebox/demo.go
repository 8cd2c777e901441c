package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/linebox-dev/linebox/internal/logger"
	"github.com/linebox-dev/linebox/internal/theme"
	"github.com/linebox-dev/linebox/internal/tui"
)

type demoOptions struct {
	ThemePath string
	Log       *logger.Logger
}

var demoCmdRunner = runDemo

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive gallery of the themed components",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Log = root.logger()
			return demoCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ThemePath, "theme", "t", "", "Path to a theme file shown alongside the built-in themes")

	return cmd
}

func runDemo(opts demoOptions) error {
	themes := []theme.Theme{theme.Default(), theme.Dark()}
	if opts.ThemePath != "" {
		th, err := theme.Load(opts.ThemePath)
		if err != nil {
			return err
		}
		themes = append([]theme.Theme{th}, themes...)
	}

	model := tui.NewModel(themes, opts.Log)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Not attached to a terminal, so render the gallery once at a
		// fixed size instead of starting the event loop.
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width, height = 100, 40
		}

		updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
		if m, ok := updated.(tui.Model); ok {
			model = m
		}
		fmt.Fprintln(os.Stdout, model.View())
		return nil
	}

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
