package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/extract"
	"jobsift-engine/internal/fetch"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Engine  *extract.Engine
	Fetcher *fetch.Fetcher

	// Atomic stores
	CfgVal     *atomic.Value // stores config.Config
	PollStatus *atomic.Value // stores httpapi.PollStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Mailbox poll entrypoint (inject for testability)
	RunMailboxPoll func(ctx context.Context, db *sql.DB, cfg config.Config, onNewRecord func()) (added int, err error)
}
