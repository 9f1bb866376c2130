package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devluplabs/socterm/internal/config"
	"github.com/devluplabs/socterm/internal/tui"
	"github.com/devluplabs/socterm/internal/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Version = "dev"

// app carries the parsed global flags and what PersistentPreRunE builds
// from them.
type app struct {
	configPath   string
	sheetURL     string
	theme        int
	showArchived bool
	verbose      bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "socterm",
		Short: "DevlUp Labs Summer of Code project archive",
		Long: `socterm is a terminal for browsing the DevlUp Labs Summer of Code
project archive. Projects come from the published project sheet; when it
cannot be reached a built-in sample list is shown instead.

Run without arguments to start the interactive terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default <config dir>/config.yaml)")
	pf.StringVar(&a.sheetURL, "sheet-url", "", "CSV/TSV export URL of the project sheet")
	pf.IntVar(&a.theme, "theme", config.ThemeWinter, "theme: 0 neutral, 1 winter, 2 summer")
	pf.BoolVar(&a.showArchived, "show-archived", false, "show the Archived tab")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.newExecCmd(),
		a.newProjectsCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// setup resolves the configuration (file, then .env and environment, then
// flags) and opens the log file.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadConfigFrom(a.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("sheet-url") {
		cfg.SheetURL = a.sheetURL
	}
	if flags.Changed("theme") {
		if a.theme < config.ThemeNeutral || a.theme > config.ThemeSummer {
			return fmt.Errorf("invalid theme %d: want 0, 1 or 2", a.theme)
		}
		cfg.Theme = a.theme
	}
	if flags.Changed("show-archived") {
		cfg.ShowArchived = a.showArchived
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// newLogger writes JSON logs to <config dir>/socterm.log; stdout belongs to
// the TUI.
func newLogger(level string) (*zap.Logger, error) {
	logPath, err := utils.GetLogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{logPath}
	zc.ErrorOutputPaths = []string{logPath}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "socterm needs an interactive terminal.")
		fmt.Fprintln(out, `Use "socterm exec <command>" or "socterm projects" from scripts.`)
		fmt.Fprintf(out, "Config: %s\n", utils.GetConfigPathForDisplay())
		return nil
	}

	tui.Version = Version
	a.logger.Info("starting", zap.String("version", Version), zap.Int("theme", a.cfg.Theme))

	model := tui.NewModel(tui.Options{Config: a.cfg, Logger: a.logger})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "socterm %s\n", Version)
		},
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
