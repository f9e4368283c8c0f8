package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tir2sum-maker/motor-prep-analyzer/internal/analysis"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/config"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/logging"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/service"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/store"
	"github.com/tir2sum-maker/motor-prep-analyzer/internal/tui"
)

// options are the global command-line flags
type options struct {
	configPath string
	dbPath     string
}

// env is everything a command needs once configuration has been applied
type env struct {
	cfg    *config.Config
	log    *logrus.Logger
	db     *store.DB
	roster *service.RosterService
	closer func()
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "motorprep",
		Short:         "Biological maturity and motor test analysis for youth football players",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.motorprep/config.json)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database file (overrides database.path)")

	rootCmd.AddCommand(tuiCmd(&opts))
	rootCmd.AddCommand(listCmd(&opts))
	rootCmd.AddCommand(reportCmd(&opts))
	rootCmd.AddCommand(importCmd(&opts))
	rootCmd.AddCommand(deleteCmd(&opts))
	rootCmd.AddCommand(squadCmd(&opts))

	exitOnError(logging.New("error", "text", os.Stderr), rootCmd.Execute())
}

// exitOnError logs err fatally, which exits with status 1
func exitOnError(log *logrus.Logger, err error) {
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config file, creating the example on first run
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return nil, fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Fprintf(os.Stderr, "Created default config at %s/config.json\n", configDir)
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setup loads configuration, opens logging and the database, and builds the
// roster service. Interactive sessions log to a file so the screen stays clean.
func setup(opts options, interactive bool) (*env, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return nil, fmt.Errorf("invalid config (edit %s/config.json): %w", configDir, err)
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	if interactive {
		dir, err := config.GetConfigDir()
		if err != nil {
			return nil, err
		}
		f, err := logging.OpenFile(filepath.Join(dir, "motorprep.log"))
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format, out)

	engine, err := buildEngine(cfg.Analysis)
	if err != nil {
		closeLog()
		return nil, err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	log.WithFields(logrus.Fields{
		"database":  cfg.Database.Path,
		"reference": cfg.Analysis.ReferenceFile,
		"workers":   cfg.Analysis.Workers,
	}).Debug("starting")

	return &env{
		cfg:    cfg,
		log:    log,
		db:     db,
		roster: service.NewRosterService(db, engine, cfg.Analysis.Workers, log),
		closer: func() {
			db.Close()
			closeLog()
		},
	}, nil
}

// buildEngine applies analysis settings, loading a custom reference table when set
func buildEngine(cfg config.AnalysisConfig) (analysis.Engine, error) {
	engine := analysis.DefaultEngine()
	engine.MonthsBetween = cfg.MonthsBetween
	engine.MatchDuration = cfg.MatchDuration

	if cfg.ReferenceFile != "" {
		table, err := analysis.LoadReferenceTable(cfg.ReferenceFile)
		if err != nil {
			return engine, err
		}
		engine.Reference = table.Lookup
	}

	return engine, nil
}

func runTUI(opts options) error {
	e, err := setup(opts, true)
	if err != nil {
		return err
	}
	defer e.closer()

	app := tui.NewApp(e.roster, e.cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
