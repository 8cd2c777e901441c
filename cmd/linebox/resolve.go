package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/linebox-dev/linebox/internal/components"
	"github.com/linebox-dev/linebox/internal/logger"
	"github.com/linebox-dev/linebox/internal/style"
	"github.com/linebox-dev/linebox/internal/theme"
	lberrors "github.com/linebox-dev/linebox/pkg/errors"
)

type resolveOptions struct {
	ThemePath string
	PropsPath string
	Log       *logger.Logger
	Out       io.Writer
}

var resolveCmdRunner = runResolve

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a style request against a theme and print the computed style",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Log = root.logger()
			opts.Out = cmd.OutOrStdout()
			return resolveCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ThemePath, "theme", "t", "", "Path to a theme file (defaults to the built-in theme)")
	cmd.Flags().StringVarP(&opts.PropsPath, "props", "p", "", "Path to a YAML file of style props")
	cmd.MarkFlagRequired("props") //nolint:errcheck

	return cmd
}

func runResolve(opts resolveOptions) error {
	th, err := loadTheme(opts.ThemePath)
	if err != nil {
		return err
	}

	props, err := loadProps(opts.PropsPath)
	if err != nil {
		return err
	}

	result, err := style.Compute(components.BoxDefinition(), th, props)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		opts.Log.WithFields(map[string]any{
			"property": d.Property,
			"axis":     d.Axis.String(),
		}).Warn(d.Message())
	}

	out, err := yaml.Marshal(result.Style)
	if err != nil {
		return fmt.Errorf("encode computed style: %w", err)
	}
	fmt.Fprint(opts.Out, string(out))

	return nil
}

func loadTheme(path string) (theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

func loadProps(path string) (style.Props, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lberrors.NewParseError(path, 0, err)
	}

	props := style.Props{}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, lberrors.NewParseError(path, 0, err)
	}

	return props, nil
}
