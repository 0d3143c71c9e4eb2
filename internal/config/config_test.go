package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	cfg := Normalize(Config{})

	if cfg.App.Port != 8791 {
		t.Errorf("port = %d", cfg.App.Port)
	}
	if cfg.Fetch.RequestsPerSecond != 1 || cfg.Fetch.Burst != 2 {
		t.Errorf("fetch rate = %v/%v", cfg.Fetch.RequestsPerSecond, cfg.Fetch.Burst)
	}
	if cfg.Fetch.TimeoutSeconds != 20 || cfg.Fetch.MaxConcurrent != 4 {
		t.Errorf("fetch timeout/concurrency = %d/%d", cfg.Fetch.TimeoutSeconds, cfg.Fetch.MaxConcurrent)
	}
	if cfg.Mailbox.Mailbox != "INBOX" || cfg.Mailbox.PollSeconds != 300 || cfg.Mailbox.MaxEmails != 50 {
		t.Errorf("mailbox defaults = %+v", cfg.Mailbox)
	}
}

func TestNormalizeTrimsLists(t *testing.T) {
	var cfg Config
	cfg.Extract.SkillsExtra = []string{" snowflake ", "", "Snowflake", "dbt"}
	cfg = Normalize(cfg)

	if len(cfg.Extract.SkillsExtra) != 2 {
		t.Errorf("skills_extra = %v", cfg.Extract.SkillsExtra)
	}
}

func TestStorageDir(t *testing.T) {
	var cfg Config
	if got := cfg.StorageDir("/data/default"); got != "/data/default" {
		t.Errorf("StorageDir fallback = %q", got)
	}

	cfg.App.DataDir = "/data/custom"
	if got := cfg.StorageDir("/data/default"); got != "/data/custom" {
		t.Errorf("StorageDir configured = %q", got)
	}

	cfg.App.DataDir = "   "
	if got := cfg.StorageDir("/data/default"); got != "/data/default" {
		t.Errorf("StorageDir blank = %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Normalize(Config{})); err != nil {
		t.Errorf("normalized defaults should validate: %v", err)
	}

	bad := Normalize(Config{})
	bad.App.Port = -1
	err := Validate(bad)
	if err == nil || !strings.Contains(err.Error(), "app.port") {
		t.Errorf("expected port error, got %v", err)
	}

	bad = Normalize(Config{})
	bad.Mailbox.Enabled = true
	err = Validate(bad)
	if err == nil || !strings.Contains(err.Error(), "imap_host") {
		t.Errorf("expected mailbox error, got %v", err)
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := Normalize(Config{})
	cfg.App.Port = 9999
	cfg.Mailbox.Senders = []string{"jobalerts-noreply@linkedin.com"}

	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Port != 9999 {
		t.Errorf("port = %d", got.App.Port)
	}
	if len(got.Mailbox.Senders) != 1 || got.Mailbox.Senders[0] != "jobalerts-noreply@linkedin.com" {
		t.Errorf("senders = %v", got.Mailbox.Senders)
	}
}

func TestEnsureUserConfigSeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != 8791 {
		t.Errorf("seeded port = %d", cfg.App.Port)
	}

	// second call reuses the existing file
	again, err := EnsureUserConfig(dir, "")
	if err != nil || again != path {
		t.Errorf("EnsureUserConfig again = (%q, %v)", again, err)
	}
}
