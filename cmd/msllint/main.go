// Command msllint loads a mapping document, resolves every reference, and
// reports each diagnostic on stderr. With --watch it keeps running and
// re-lints the document whenever the file changes on disk.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/modeledge/msl"
)

// errFindings distinguishes a document with diagnostics from an
// operational failure; it maps to exit code 1 instead of 2.
var errFindings = errors.New("document has findings")

type lintConfig struct {
	StructuralCheck bool `yaml:"structuralCheck"`
	Localize        bool `yaml:"localize"`
}

type lintFlags struct {
	configPath string
	check      bool
	localize   bool
	watch      bool
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCommand() *cobra.Command {
	var flags lintFlags

	cmd := &cobra.Command{
		Use:   "msllint <document.msl>",
		Short: "Lint a mapping document",
		Long: `msllint loads a mapping document, resolves every symbolic reference
against the containers the document declares, and reports unresolved or
ambiguous references. With --check it also flags unknown attributes,
unknown child elements, and duplicate container names.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&flags.check, "check", false, "also run the structural self-check")
	cmd.Flags().BoolVar(&flags.localize, "localize", false, "use localized mapping display names")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "keep running and re-lint on file changes")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, path string, flags lintFlags) error {
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	// Flags override the config file.
	if cmd.Flags().Changed("check") {
		cfg.StructuralCheck = flags.check
	}
	if cmd.Flags().Changed("localize") {
		cfg.Localize = flags.localize
	}

	if !flags.watch {
		return lint(logger, path, cfg)
	}
	return watch(logger, path, cfg)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func loadConfig(path string) (lintConfig, error) {
	var cfg lintConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// lint loads, resolves, and reports. It returns errFindings when the
// document produced diagnostics.
func lint(logger *zap.Logger, path string, cfg lintConfig) error {
	opts := msl.NewLoadOptions().WithStructuralCheck(cfg.StructuralCheck)
	doc, err := msl.LoadFileWithOptions(path, opts)
	if err != nil {
		return err
	}
	doc.Resolve()

	for _, m := range doc.ContainerMappings() {
		logger.Debug("container mapping",
			zap.String("name", m.DisplayName(nil, cfg.Localize)),
			zap.Int("entitySets", len(m.EntitySetMappings())),
			zap.Int("associationSets", len(m.AssociationSetMappings())))
	}

	diags := doc.Diagnostics()
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if len(diags) > 0 || !doc.Resolved() {
		logger.Info("document has findings",
			zap.String("path", path),
			zap.Int("diagnostics", len(diags)),
			zap.Bool("resolved", doc.Resolved()))
		return errFindings
	}

	fmt.Printf("%s resolves\n", path)
	return nil
}

// watch re-lints the document on every settled write. Editors often replace
// files via rename, so the parent directory is watched rather than the file.
func watch(logger *zap.Logger, path string, cfg lintConfig) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	report := func() {
		if err := lint(logger, abs, cfg); err != nil && !errors.Is(err, errFindings) {
			logger.Error("lint failed", zap.String("path", abs), zap.Error(err))
		}
	}
	report()
	logger.Info("watching", zap.String("path", abs))

	// Debounce rapid save sequences into one re-lint.
	const settle = 200 * time.Millisecond
	var pending *time.Timer
	relint := make(chan struct{}, 1)

	for {
		select {
		case <-stop:
			logger.Info("stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(settle, func() {
				select {
				case relint <- struct{}{}:
				default:
				}
			})

		case <-relint:
			logger.Debug("change settled", zap.String("path", abs))
			report()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
