package main

import (
	"encoding/json"
	"fmt"

	"github.com/aligator/fxbmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// createInfoCommand creates the info subcommand
func createInfoCommand(opts *options) *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info [flags] IMAGE_FILE",
		Short: "prints the geometry and usage of an image",
		Long: `Info classifies the image as internal or external backup
		memory and reports its sector layout, FAT type and free space.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.openVolume(args[0])
			if err != nil {
				return err
			}

			r, err := v.Report()
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}

			return writeReport(cmd, r, opts.cfg.Format)
		},
	}

	infoCmd.Flags().StringVar(&opts.format, "format", "text",
		"Specify the output format (text, json, yaml)")

	return infoCmd
}

func writeReport(cmd *cobra.Command, r *fxbmp.Report, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "text":
		fxbmp.PrintReport(out, r)
		return nil

	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil

	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, _ = fmt.Fprint(out, string(b))
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
