package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/events"
)

type MailboxHandler struct {
	DB         *sql.DB
	CfgVal     *atomic.Value // config.Config
	PollStatus *atomic.Value // httpapi.PollStatus
	Hub        *events.Hub
	RunPoll    func(ctx context.Context, db *sql.DB, cfg config.Config, onNewRecord func()) (added int, err error)
}

func (h MailboxHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.PollStatus.Load().(PollStatus)
	writeJSON(w, st)
}

func (h MailboxHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.PollStatus.Load().(PollStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.PollStatus.Store(PollStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		added, err := h.RunPoll(context.Background(), h.DB, cfg, func() {
			h.Hub.Publish(events.MakeEvent("", events.TypeRecordStored, 1, nil))
		})

		now := time.Now().Format(time.RFC3339)
		next := h.PollStatus.Load().(PollStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = added
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.PollStatus.Store(next)

		h.Hub.Publish(events.MakeEvent("", events.TypeMailboxPolled, 1, map[string]any{"added": added}))
	}()

	writeJSON(w, map[string]any{"ok": true})
}
