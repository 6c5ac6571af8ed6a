// Command shelf manages a book catalog stored in a JSON file.
//
// Run without arguments for the interactive menu, or use one of the
// subcommands for one-shot edits. Configuration is read from flags,
// SHELF_* environment variables and an optional shelf.yaml.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jpl-au/shelf"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		os.Exit(1)
	}
}

// config is the resolved CLI configuration.
type config struct {
	File       string `mapstructure:"file"`
	Backups    int    `mapstructure:"backups"`
	SyncWrites bool   `mapstructure:"sync_writes"`
	Hash       string `mapstructure:"hash"`
	LogLevel   string `mapstructure:"log_level"`
}

var hashAlgorithms = map[string]int{
	"xxh3":    shelf.AlgXXHash3,
	"fnv":     shelf.AlgFNV1a,
	"blake2b": shelf.AlgBlake2b,
}

// app carries the one Library every command works on.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	lib     *shelf.Library
	log     *slog.Logger
	out     io.Writer
	st      styles
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Manage a small book catalog",
		Long:          `shelf keeps a catalog of books in a JSON file. Without a subcommand it starts an interactive menu.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !usesCatalog(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.menu(cmd.InOrStdin())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./shelf.yaml or ~/.config/shelf/shelf.yaml)")
	flags.StringP("file", "f", shelf.DefaultPath, "catalog file")
	flags.Int("backups", 0, "compressed snapshots to keep on save (0 disables)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = a.v.BindPFlag("file", flags.Lookup("file"))
	_ = a.v.BindPFlag("backups", flags.Lookup("backups"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		a.listCmd(),
		a.searchCmd(),
		a.showCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.toggleCmd(),
		a.exportCmd(),
		a.backupsCmd(),
		a.restoreCmd(),
	)
	return root
}

// usesCatalog reports whether cmd works on the catalog. Cobra's help and
// completion commands run without configuration or a loaded catalog.
func usesCatalog(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// setup resolves configuration, builds the logger and loads the catalog.
// A missing catalog starts empty; an unreadable one aborts so a later
// save cannot overwrite it.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger

	alg, ok := hashAlgorithms[a.cfg.Hash]
	if !ok {
		return fmt.Errorf("unknown hash %q (want xxh3, fnv or blake2b)", a.cfg.Hash)
	}

	a.out = cmd.OutOrStdout()
	a.st = newStyles(a.out)
	a.lib = shelf.New(a.cfg.File, shelf.Config{
		HashAlgorithm: alg,
		Backups:       a.cfg.Backups,
		SyncWrites:    a.cfg.SyncWrites,
		Logger:        logger,
	})

	err = a.lib.Load()
	switch {
	case errors.Is(err, shelf.ErrNoFile):
		a.log.Info("no catalog yet, starting empty", "file", a.lib.Path())
	case err != nil:
		return fmt.Errorf("loading %s: %w", a.lib.Path(), err)
	default:
		a.log.Info("catalog loaded", "file", a.lib.Path(), "books", a.lib.Len())
	}
	return nil
}

func (a *app) loadConfig() error {
	v := a.v
	v.SetDefault("file", shelf.DefaultPath)
	v.SetDefault("backups", 0)
	v.SetDefault("sync_writes", false)
	v.SetDefault("hash", "xxh3")
	v.SetDefault("log_level", "warn")
	v.SetEnvPrefix("shelf")
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		// Lookup order: ./shelf.yaml, then the user config directory.
		v.SetConfigName("shelf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "shelf"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// newLogger returns a tint handler on w. Colour is only used when w is a
// terminal; colorable translates escapes on Windows consoles.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})), nil
}
