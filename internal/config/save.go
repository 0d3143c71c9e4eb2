package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Fetch.RequestsPerSecond <= 0 {
		errs = append(errs, "fetch.requests_per_second must be > 0")
	}
	if cfg.Fetch.Burst <= 0 {
		errs = append(errs, "fetch.burst must be > 0")
	}
	if cfg.Mailbox.Enabled {
		if cfg.Mailbox.IMAPHost == "" {
			errs = append(errs, "mailbox.imap_host is required when mailbox is enabled")
		}
		if cfg.Mailbox.Username == "" {
			errs = append(errs, "mailbox.username is required when mailbox is enabled")
		}
	}
	for i, s := range cfg.Extract.SkillsExtra {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("extract.skills_extra[%d] cannot be empty", i))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
