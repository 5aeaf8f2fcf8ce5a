package main

import (
	"fmt"
	"io"
	"path"

	"github.com/aligator/fxbmp"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// createListCommand creates the list subcommand
func createListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [flags] IMAGE_FILE",
		Short: "lists the saves stored in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.openVolume(args[0])
			if err != nil {
				return err
			}

			res, err := v.Extract(&listSink{
				w: cmd.OutOrStdout(),
				p: message.NewPrinter(language.English),
			})
			if err != nil {
				return err
			}
			return failuresError(res)
		},
	}
}

// listSink prints the tree instead of writing it.
type listSink struct {
	w io.Writer
	p *message.Printer
}

func (l *listSink) Mkdir(dir string, entry fxbmp.DirEntry) error {
	_, err := fmt.Fprintf(l.w, "%-19s           <DIR>\n", dir)
	return err
}

func (l *listSink) WriteFile(name string, data []byte, entry fxbmp.DirEntry) error {
	modified := "-"
	if t := entry.ModTime(); !t.IsZero() {
		modified = t.Format("2006-01-02 15:04")
	}

	_, err := l.p.Fprintf(l.w, "   %-19s  %10d  %s\n", path.Base(name), len(data), modified)
	return err
}

// failuresError turns the failed entries of a walk into the command's error.
func failuresError(res *fxbmp.Result) error {
	if len(res.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d entries could not be reconstructed, first: %v", len(res.Failures), res.Failures[0])
}
