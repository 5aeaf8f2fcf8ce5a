package main

import (
	"fmt"

	"github.com/aligator/fxbmp"
	"github.com/aligator/fxbmp/internal/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// createExtractCommand creates the extract subcommand
func createExtractCommand(opts *options) *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [flags] IMAGE_FILE",
		Short: "writes the saves stored in an image to a directory",
		Long: `Extract recreates every save directory of the image below the
		output directory and writes each save file into it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExtract(cmd, args, opts)
		},
	}

	extractCmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Directory to extract into")
	extractCmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace files which already exist")
	extractCmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a progress bar")

	return extractCmd
}

func executeExtract(cmd *cobra.Command, args []string, opts *options) error {
	log := logger.Logger()

	v, err := opts.openVolume(args[0])
	if err != nil {
		return err
	}

	var sink fxbmp.Sink = fxbmp.NewFsSink(appFs, opts.cfg.Output, opts.cfg.Overwrite)

	if opts.progress {
		r, err := v.Report()
		if err != nil {
			return err
		}
		used := (r.DataSectors - r.FreeSectors) * r.SectorSize

		bar := progressbar.NewOptions(used,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("extracting"),
			progressbar.OptionShowBytes(true),
		)
		defer func() { _ = bar.Finish() }()
		sink = &progressSink{Sink: sink, bar: bar}
	}

	log.Infof("Extracting %s to %s", args[0], opts.cfg.Output)
	res, err := v.Extract(sink)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d directories, %d files extracted to %s\n", res.Dirs, res.Files, opts.cfg.Output)
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
	}
	return failuresError(res)
}

// progressSink advances a progress bar by the bytes of every written file.
// The bar is informational, so its errors are dropped.
type progressSink struct {
	fxbmp.Sink
	bar *progressbar.ProgressBar
}

func (p *progressSink) WriteFile(name string, data []byte, entry fxbmp.DirEntry) error {
	if err := p.Sink.WriteFile(name, data, entry); err != nil {
		return err
	}
	_ = p.bar.Add(len(data))
	return nil
}
