package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nhle/deepdetect/internal/app"
	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/credential"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/relay"
	"github.com/nhle/deepdetect/internal/store"
)

var (
	// Global flags
	cfgPath string
	envFile string
	verbose bool
	section string

	cfg    *model.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "deepdetect",
	Short: "The DeepDetect research project site, in your terminal",
	Long: `DeepDetect is an AI-powered potato disease detection research project.

Run without arguments to browse the project, team, research and feed, and
to post to the community forum. Forum posts are relayed through EmailJS,
or written to a local outbox when relay.backend is "outbox".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", model.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with EMAILJS_* variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().StringVarP(&section, "section", "s", "", "section to open first")

	rootCmd.AddCommand(sendCmd, deliveriesCmd, keyringCmd, configCmd)
}

// setup loads the environment, the config file and the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	var err error
	cfg, err = model.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// newLogger builds a production logger writing to the configured file.
// The terminal belongs to the UI, so nothing is logged to stderr.
func newLogger(lc model.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{lc.File}
	config.ErrorOutputPaths = []string{lc.File}
	return config.Build()
}

// openJournal opens the delivery journal. The site works without it, so a
// failure is logged and a nil journal returned.
func openJournal() store.Journal {
	s, err := store.NewSQLiteStore(cfg.Journal.Path)
	if err != nil {
		logger.Warn("delivery journal unavailable", zap.String("path", cfg.Journal.Path), zap.Error(err))
		return nil
	}
	return s
}

// relayDeps builds the sender and credentials from the loaded config.
func relayDeps() (relay.Sender, relay.Credentials, error) {
	sender, err := relay.New(cfg.Relay)
	if err != nil {
		return nil, relay.Credentials{}, err
	}
	return sender, relay.CredentialsFromConfig(cfg.Relay, credential.Get), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := content.Load()
	if err != nil {
		return err
	}
	sender, creds, err := relayDeps()
	if err != nil {
		return err
	}
	if !creds.Complete() {
		logger.Warn("relay identifiers incomplete; forum posts will fail",
			zap.Bool("service_id", creds.ServiceID != ""),
			zap.Bool("template_id", creds.TemplateID != ""),
			zap.Bool("public_key", creds.PublicKey != ""),
		)
	}

	journal := openJournal()
	if journal != nil {
		defer journal.Close()
	}

	cfg.Display.StartSection = startSection(section, cfg.Display.StartSection)

	m := app.New(app.Deps{
		Content:     c,
		Config:      cfg,
		Sender:      sender,
		Credentials: creds,
		Journal:     journal,
		Logger:      logger,
	})

	logger.Info("starting", zap.String("section", cfg.Display.StartSection), zap.String("relay", cfg.Relay.Backend))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// startSection picks the --section flag over the configured section and
// normalizes it to a section id.
func startSection(flag, configured string) string {
	s := configured
	if strings.TrimSpace(flag) != "" {
		s = flag
	}
	return strings.ToLower(strings.TrimSpace(s))
}
