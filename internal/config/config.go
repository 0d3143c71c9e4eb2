package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		MaxConcurrent     int     `yaml:"max_concurrent"`
		UserAgent         string  `yaml:"user_agent"`
	} `yaml:"fetch"`

	Mailbox struct {
		Enabled     bool     `yaml:"enabled"`
		IMAPHost    string   `yaml:"imap_host"`
		IMAPPort    int      `yaml:"imap_port"`
		Username    string   `yaml:"username"`
		Mailbox     string   `yaml:"mailbox"`
		Senders     []string `yaml:"senders"`
		PollSeconds int      `yaml:"poll_seconds"`
		MaxEmails   int      `yaml:"max_emails"`
	} `yaml:"mailbox"`

	Extract struct {
		// SkillsExtra extends the built-in skill vocabulary.
		SkillsExtra []string `yaml:"skills_extra"`
	} `yaml:"extract"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return Normalize(cfg), nil
}

// Normalize fills defaults and trims list entries.
func Normalize(cfg Config) Config {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8791
	}
	if cfg.Fetch.RequestsPerSecond <= 0 {
		cfg.Fetch.RequestsPerSecond = 1
	}
	if cfg.Fetch.Burst <= 0 {
		cfg.Fetch.Burst = 2
	}
	if cfg.Fetch.TimeoutSeconds <= 0 {
		cfg.Fetch.TimeoutSeconds = 20
	}
	if cfg.Fetch.MaxConcurrent <= 0 {
		cfg.Fetch.MaxConcurrent = 4
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "JobSift/1.0 (+local)"
	}
	if cfg.Mailbox.Mailbox == "" {
		cfg.Mailbox.Mailbox = "INBOX"
	}
	if cfg.Mailbox.PollSeconds <= 0 {
		cfg.Mailbox.PollSeconds = 300
	}
	if cfg.Mailbox.MaxEmails <= 0 {
		cfg.Mailbox.MaxEmails = 50
	}

	cfg.Mailbox.Senders = trimList(cfg.Mailbox.Senders)
	cfg.Extract.SkillsExtra = trimList(cfg.Extract.SkillsExtra)
	return cfg
}

// StorageDir is where the database and runtime files live: app.data_dir
// when configured, else fallback (normally the directory the config itself
// was loaded from).
func (c Config) StorageDir(fallback string) string {
	if dir := strings.TrimSpace(c.App.DataDir); dir != "" {
		return dir
	}
	return fallback
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
