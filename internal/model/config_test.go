package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("EMAILJS_SERVICE_ID", "")
	t.Setenv("VITE_EMAILJS_SERVICE_ID", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, RelayEmailJS, cfg.Relay.Backend)
	assert.Equal(t, "https://api.emailjs.com", cfg.Relay.Endpoint)
	assert.Equal(t, "anonymous@deepdetect.community", cfg.Forum.AnonymousSender)
	assert.Equal(t, "met57@aber.ac.uk", cfg.Forum.RecipientEmail)
	assert.Equal(t, "home", cfg.Display.StartSection)
	assert.Empty(t, cfg.Relay.ServiceID)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("EMAILJS_SERVICE_ID", "")
	t.Setenv("VITE_EMAILJS_SERVICE_ID", "service_vite")
	t.Setenv("EMAILJS_TEMPLATE_ID", "template_x")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pk_123")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "service_vite", cfg.Relay.ServiceID)
	assert.Equal(t, "template_x", cfg.Relay.TemplateID)
	assert.Equal(t, "pk_123", cfg.Relay.PublicKey)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`relay:
  backend: outbox
  outbox_dir: /tmp/outbox
forum:
  default_subject: Hello
display:
  sidebar_width: 4
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, RelayOutbox, cfg.Relay.Backend)
	assert.Equal(t, "/tmp/outbox", cfg.Relay.OutboxDir)
	assert.Equal(t, "Hello", cfg.Forum.DefaultSubject)
	assert.Equal(t, "met57@aber.ac.uk", cfg.Forum.RecipientEmail)
	assert.Equal(t, 12, cfg.Display.SidebarWidth, "narrow sidebars are clamped")
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("relay:\n  backend: pigeon\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pigeon")
}

func TestSaveConfigOmitsPublicKey(t *testing.T) {
	t.Setenv("EMAILJS_PUBLIC_KEY", "")
	t.Setenv("VITE_EMAILJS_PUBLIC_KEY", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultAppConfig()
	cfg.Relay.ServiceID = "service_1"
	cfg.Relay.PublicKey = "secret"

	require.NoError(t, SaveConfig(path, cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "service_1", loaded.Relay.ServiceID)
	assert.Empty(t, loaded.Relay.PublicKey)
	assert.Equal(t, "secret", cfg.Relay.PublicKey, "caller's config is untouched")
}
