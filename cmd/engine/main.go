package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/extract"
	"jobsift-engine/internal/fetch"
	"jobsift-engine/internal/httpapi"
	"jobsift-engine/internal/mailbox"
	"jobsift-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBSIFT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Single-instance guard. A second engine against the same data dir
	// would fight over the SQLite file and the IMAP \Seen flags.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is already running (data_dir=%s)", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	// The config can point storage somewhere other than the config dir.
	storeDir := cfg.StorageDir(dataDir)
	if storeDir != dataDir {
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	dbPath := filepath.Join(storeDir, "jobsift.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	engine := extract.NewEngine(cfg.Extract.SkillsExtra...)
	limiter := fetch.NewHostLimiter(cfg.Fetch.RequestsPerSecond, cfg.Fetch.Burst)
	fetcher := fetch.New(
		engine,
		limiter,
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
		cfg.Fetch.UserAgent,
		cfg.Fetch.MaxConcurrent,
	)

	var pollStatus atomic.Value
	pollStatus.Store(httpapi.PollStatus{})

	runPoll := func(ctx context.Context, db *sql.DB, cfg config.Config, onNewRecord func()) (int, error) {
		return mailbox.PollOnce(ctx, db, cfg, fetcher, onNewRecord)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:             db.Pool,
		Hub:            hub,
		Engine:         engine,
		Fetcher:        fetcher,
		CfgVal:         &cfgVal,
		PollStatus:     &pollStatus,
		UserCfgPath:    userCfgPath,
		LoadCfg:        loadCfg,
		RunMailboxPoll: runPoll,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Cors,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Recover,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Local shutdown endpoint, token-guarded. The token lives next to
	// the DB so only something that can read the data dir can stop us.
	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	tokenPath := filepath.Join(storeDir, "engine.token")
	if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
		log.Fatalf("write shutdown token: %v", err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	pollCtx, stopPoll := context.WithCancel(context.Background())
	defer stopPoll()
	go mailboxLoop(pollCtx, db.Pool, &cfgVal, &pollStatus, hub, runPoll)

	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	stopPoll()
	log.Printf("engine stopped")
}

// mailboxLoop runs the mail poll on a fixed interval when the mailbox is
// enabled. It skips a tick if a manual /mailbox/run is still in flight.
func mailboxLoop(
	ctx context.Context,
	db *sql.DB,
	cfgVal *atomic.Value,
	pollStatus *atomic.Value,
	hub *events.Hub,
	runPoll func(ctx context.Context, db *sql.DB, cfg config.Config, onNewRecord func()) (int, error),
) {
	for {
		cfg := cfgVal.Load().(config.Config)
		wait := time.Duration(cfg.Mailbox.PollSeconds) * time.Second

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		cfg = cfgVal.Load().(config.Config)
		if !cfg.Mailbox.Enabled {
			continue
		}
		st := pollStatus.Load().(httpapi.PollStatus)
		if st.Running {
			continue
		}

		pollStatus.Store(httpapi.PollStatus{
			LastRunAt: time.Now().Format(time.RFC3339),
			Running:   true,
			LastOkAt:  st.LastOkAt,
		})

		added, err := runPoll(ctx, db, cfg, func() {
			hub.Publish(events.MakeEvent("", events.TypeRecordStored, 1, nil))
		})

		now := time.Now().Format(time.RFC3339)
		next := pollStatus.Load().(httpapi.PollStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = added
		if err != nil {
			log.Printf("[mailbox] poll failed: %v", err)
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		pollStatus.Store(next)

		hub.Publish(events.MakeEvent("", events.TypeMailboxPolled, 1, map[string]any{"added": added}))
	}
}
