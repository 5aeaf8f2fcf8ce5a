// Command fxbmp inspects and extracts PC-FX backup memory images.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aligator/fxbmp"
	"github.com/aligator/fxbmp/internal/config"
	"github.com/aligator/fxbmp/internal/imageload"
	"github.com/aligator/fxbmp/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Allow tests to swap in an in-memory filesystem.
var appFs = afero.NewOsFs()

// options collects the flags of all commands. resolve merges them over the
// config file into cfg.
type options struct {
	configPath string
	logLevel   string
	codepage   string
	skipChecks bool
	format     string
	output     string
	overwrite  bool
	progress   bool

	cfg config.Config
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "fxbmp",
		Short: "inspects and extracts PC-FX backup memory images",
		Long: `fxbmp reads a dump of the PC-FX internal backup memory or of
an FX-BMP memory card and reproduces the saves stored in it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(createInfoCommand(opts))
	rootCmd.AddCommand(createListCommand(opts))
	rootCmd.AddCommand(createExtractCommand(opts))

	return rootCmd
}

func addGlobalFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.codepage, "codepage", "shift-jis", "Codepage of entry names (shift-jis, cp437)")
	flags.BoolVar(&opts.skipChecks, "skip-checks", false, "Read images whose OEM name is not a PC-FX one")
}

// resolve loads the config file and applies every flag set explicitly.
// Logs go to logOut.
func (o *options) resolve(flags *pflag.FlagSet, logOut io.Writer) error {
	cfg, err := config.Load(appFs, o.configPath)
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("codepage") {
		cfg.Codepage = o.codepage
	}
	if flags.Changed("skip-checks") {
		cfg.SkipChecks = o.skipChecks
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("overwrite") {
		cfg.Overwrite = o.overwrite
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.InitWriter(cfg.LogLevel, logOut); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	o.cfg = cfg
	return nil
}

func (o *options) openVolume(path string) (*fxbmp.Volume, error) {
	log := logger.Logger()

	b, err := imageload.Load(appFs, path)
	if err != nil {
		return nil, err
	}

	enc, err := o.cfg.Encoding()
	if err != nil {
		return nil, err
	}

	v, err := fxbmp.NewWithOptions(b, fxbmp.Options{
		SkipChecks: o.cfg.SkipChecks,
		Codepage:   enc,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	l := v.Layout()
	log.Debugf("opened %s: %s memory, %v, %d byte sectors", path, l.Media, l.FSType, l.SectorSize)
	return v, nil
}
