package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/store"
)

// outboxConfig writes a config that relays to a local outbox under dir.
func outboxConfig(t *testing.T) (path, outbox, journal string) {
	t.Helper()
	dir := t.TempDir()

	c := model.DefaultAppConfig()
	c.Relay.Backend = model.RelayOutbox
	c.Relay.OutboxDir = filepath.Join(dir, "outbox")
	c.Journal.Path = filepath.Join(dir, "deliveries.db")
	c.Log.File = filepath.Join(dir, "deepdetect.log")

	path = filepath.Join(dir, "config.yaml")
	require.NoError(t, model.SaveConfig(path, c))

	t.Setenv("EMAILJS_SERVICE_ID", "service_test")
	t.Setenv("EMAILJS_TEMPLATE_ID", "template_test")
	t.Setenv("EMAILJS_PUBLIC_KEY", "public_test")
	return path, c.Relay.OutboxDir, c.Journal.Path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSendWritesOutboxAndJournal(t *testing.T) {
	cfgFile, outbox, journalPath := outboxConfig(t)

	out, err := execute(t, "send", "--config", cfgFile, "--env-file", "missing.env",
		"--category", "disease", "--topic", "Late blight", "--message", "Lesions on leaves")
	require.NoError(t, err)
	assert.Contains(t, out, "Thank you!")

	files, err := os.ReadDir(outbox)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	s, err := store.NewSQLiteStore(journalPath)
	require.NoError(t, err)
	defer s.Close()
	rows, err := s.RecentDeliveries(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Late blight", rows[0].Subject)
	assert.Equal(t, model.DeliveryDelivered, rows[0].Status)
}

func TestSendRejectsBlankMessage(t *testing.T) {
	cfgFile, outbox, _ := outboxConfig(t)

	out, err := execute(t, "send", "--config", cfgFile, "--env-file", "missing.env",
		"--category", "all", "--topic", "Hello", "--message", "   ")
	require.Error(t, err)
	assert.Contains(t, out, "Please write a message before posting.")

	_, statErr := os.Stat(outbox)
	assert.True(t, os.IsNotExist(statErr), "no message should be written")
}

func TestSendRejectsUnknownCategory(t *testing.T) {
	cfgFile, _, _ := outboxConfig(t)

	_, err := execute(t, "send", "--config", cfgFile, "--env-file", "missing.env",
		"--category", "gardening", "--message", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := newLogger(model.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	assert.Error(t, err)
}

func TestConfigShowMasksPublicKey(t *testing.T) {
	cfgFile, _, _ := outboxConfig(t)

	out, err := execute(t, "config", "show", "--config", cfgFile, "--env-file", "missing.env")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: outbox")
	assert.NotContains(t, out, "public_test")
	assert.Contains(t, out, "********")
}

func TestStartSectionNormalized(t *testing.T) {
	tests := []struct {
		flag, configured, want string
	}{
		{"", "home", "home"},
		{" Team ", "home", "team"},
		{"", "RESEARCH", "research"},
		{"  ", "Future", "future"},
		{"projects", "team", "projects"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, startSection(tt.flag, tt.configured), "flag=%q configured=%q", tt.flag, tt.configured)
	}
}
