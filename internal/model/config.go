package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Relay backend identifiers.
const (
	RelayEmailJS = "emailjs"
	RelayOutbox  = "outbox"
)

// RelayConfig selects and configures the forum relay backend.
type RelayConfig struct {
	// Backend is "emailjs" or "outbox".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Endpoint is the EmailJS API origin.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// OutboxDir is where the outbox backend writes .eml files.
	OutboxDir string `mapstructure:"outbox_dir" yaml:"outbox_dir"`

	ServiceID  string `mapstructure:"service_id" yaml:"service_id"`
	TemplateID string `mapstructure:"template_id" yaml:"template_id"`

	// PublicKey may be left empty in the file and stored in the keyring.
	PublicKey string `mapstructure:"public_key" yaml:"public_key"`
}

// ForumConfig holds the fallbacks used when composing forum messages.
type ForumConfig struct {
	DefaultSubject  string `mapstructure:"default_subject" yaml:"default_subject"`
	AnonymousSender string `mapstructure:"anonymous_sender" yaml:"anonymous_sender"`
	RecipientEmail  string `mapstructure:"recipient_email" yaml:"recipient_email"`
}

// JournalConfig locates the delivery journal database.
type JournalConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	SidebarWidth int    `mapstructure:"sidebar_width" yaml:"sidebar_width"`
	StartSection string `mapstructure:"start_section" yaml:"start_section"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Relay   RelayConfig   `mapstructure:"relay" yaml:"relay"`
	Forum   ForumConfig   `mapstructure:"forum" yaml:"forum"`
	Journal JournalConfig `mapstructure:"journal" yaml:"journal"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// ConfigDir returns ~/.config/deepdetect, or the working directory when
// the home directory cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "deepdetect")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/deepdetect/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	dir := ConfigDir()
	return &AppConfig{
		Relay: RelayConfig{
			Backend:   RelayEmailJS,
			Endpoint:  "https://api.emailjs.com",
			OutboxDir: filepath.Join(dir, "outbox"),
		},
		Forum: ForumConfig{
			DefaultSubject:  "New Discussion Post",
			AnonymousSender: "anonymous@deepdetect.community",
			RecipientEmail:  "met57@aber.ac.uk",
		},
		Journal: JournalConfig{Path: filepath.Join(dir, "deliveries.db")},
		Log: LogConfig{
			File:  filepath.Join(dir, "deepdetect.log"),
			Level: "info",
		},
		Display: DisplayConfig{
			SidebarWidth: 22,
			StartSection: "home",
		},
	}
}

func setDefaults(v *viper.Viper, cfg *AppConfig) {
	v.SetDefault("relay.backend", cfg.Relay.Backend)
	v.SetDefault("relay.endpoint", cfg.Relay.Endpoint)
	v.SetDefault("relay.outbox_dir", cfg.Relay.OutboxDir)
	v.SetDefault("forum.default_subject", cfg.Forum.DefaultSubject)
	v.SetDefault("forum.anonymous_sender", cfg.Forum.AnonymousSender)
	v.SetDefault("forum.recipient_email", cfg.Forum.RecipientEmail)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("display.sidebar_width", cfg.Display.SidebarWidth)
	v.SetDefault("display.start_section", cfg.Display.StartSection)
}

// bindEnv maps the relay identifiers to their environment variables. The
// VITE_ names are accepted so an existing web-build .env works unchanged.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"relay.service_id":  {"EMAILJS_SERVICE_ID", "VITE_EMAILJS_SERVICE_ID"},
		"relay.template_id": {"EMAILJS_TEMPLATE_ID", "VITE_EMAILJS_TEMPLATE_ID"},
		"relay.public_key":  {"EMAILJS_PUBLIC_KEY", "VITE_EMAILJS_PUBLIC_KEY"},
		"relay.backend":     {"DEEPDETECT_RELAY_BACKEND"},
	}
	for key, names := range bindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// A missing file is not an error: defaults and environment values apply.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v, defaults)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaults
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Relay.Backend {
	case RelayEmailJS, RelayOutbox:
	default:
		return nil, fmt.Errorf("config %s: unknown relay backend %q", path, cfg.Relay.Backend)
	}
	if cfg.Display.SidebarWidth < 12 {
		cfg.Display.SidebarWidth = 12
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed. The public key is never written;
// it belongs in the environment or the keyring.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	relay := cfg.Relay
	relay.PublicKey = ""
	v.Set("relay", relay)
	v.Set("forum", cfg.Forum)
	v.Set("journal", cfg.Journal)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
