package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kantanpro/kantanpro/internal/config"
)

func newSettingsCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write application settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print every setting",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer a.Close()

				settings, err := a.bridge.GetSettings(cmd.Context())
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(settings))
				for k := range settings {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					raw, err := json.Marshal(settings[k])
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", color.CyanString(k), raw)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get KEY",
			Short: "Print one setting as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer a.Close()

				value, found, err := a.bridge.GetSetting(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("setting %q is not set", args[0])
				}
				raw, err := json.Marshal(value)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Store a setting; VALUE is parsed as JSON, else kept as a string",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer a.Close()

				return a.bridge.SetSetting(cmd.Context(), args[0], parseSettingValue(args[1]))
			},
		},
	)
	return cmd
}

func parseSettingValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
