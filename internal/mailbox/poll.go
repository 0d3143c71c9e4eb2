package mailbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/fetch"
	"jobsift-engine/internal/secrets"
	"jobsift-engine/internal/store"
)

// PollOnce scans UNSEEN alert mail, harvests posting links, fetches and
// extracts each one, and persists the results. Processed messages are
// marked \Seen so reruns don't refetch the same postings.
func PollOnce(ctx context.Context, db *sql.DB, cfg config.Config, fetcher *fetch.Fetcher, onNewRecord func()) (added int, err error) {
	if db == nil {
		return 0, errors.New("db is nil")
	}
	if !cfg.Mailbox.Enabled {
		return 0, nil
	}
	if cfg.Mailbox.IMAPHost == "" || cfg.Mailbox.Username == "" {
		return 0, errors.New("mailbox enabled but missing imap_host/username")
	}

	password, err := secrets.GetIMAPPassword(secrets.IMAPKeyringAccount(cfg))
	if err != nil {
		return 0, err
	}

	addr := cfg.Mailbox.IMAPHost
	if !strings.Contains(addr, ":") {
		port := cfg.Mailbox.IMAPPort
		if port == 0 {
			port = 993
		}
		addr = fmt.Sprintf("%s:%d", addr, port)
	}

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	c, err := DialAndLogin(ctx, addr, cfg.Mailbox.Username, password)
	if err != nil {
		return 0, err
	}
	defer LogoutAndClose(c)

	if _, err := c.Select(cfg.Mailbox.Mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return 0, fmt.Errorf("imap select %q: %w", cfg.Mailbox.Mailbox, err)
	}

	msgs, err := FetchUnseen(ctx, c, cfg.Mailbox.MaxEmails)
	if err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	processed := make([]imap.UID, 0, len(msgs))

	for _, m := range msgs {
		subj := decodeRFC2047(m.Subject)

		if len(cfg.Mailbox.Senders) > 0 && !fromAny(m.From, cfg.Mailbox.Senders) {
			continue
		}

		links := ExtractPostingLinks(messageHTML(m.Raw))
		log.Printf("[mailbox] %q from=%s links=%d", subj, m.From, len(links))
		if len(links) == 0 {
			processed = append(processed, m.UID)
			continue
		}

		for _, res := range fetcher.FetchAll(ctx, links) {
			if res.Record == nil {
				continue
			}
			ok, ierr := store.InsertRecordIfNew(ctx, db, res.Record, time.Now().UTC())
			if ierr != nil {
				log.Printf("[mailbox] insert error: %v url=%q", ierr, res.Address)
				continue
			}
			if ok {
				added++
				if onNewRecord != nil {
					onNewRecord()
				}
			}
		}

		processed = append(processed, m.UID)
	}

	if err := MarkSeen(c, processed); err != nil {
		log.Printf("[mailbox] mark seen: %v", err)
	}

	return added, nil
}

func fromAny(from string, senders []string) bool {
	low := strings.ToLower(from)
	for _, s := range senders {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" && strings.Contains(low, s) {
			return true
		}
	}
	return false
}
