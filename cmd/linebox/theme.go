package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/linebox-dev/linebox/internal/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate theme files",
	}

	cmd.AddCommand(newThemeValidateCmd(root))
	cmd.AddCommand(newThemeShowCmd(root))

	return cmd
}

func newThemeValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check that a theme file parses and satisfies the theme contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load(args[0])
			if err != nil {
				return err
			}

			root.logger().WithFields(map[string]any{"theme": th.Name, "path": args[0]}).Debug("theme validated")
			fmt.Fprintf(cmd.OutOrStdout(), "theme %q is valid\n", th.Name)
			return nil
		},
	}
}

func newThemeShowCmd(root *rootFlags) *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective theme as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := loadTheme(themePath)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(th)
			if err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "Path to a theme file (defaults to the built-in theme)")

	return cmd
}
