package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Extraction
	xh := ExtractHandler{DB: d.DB, Hub: d.Hub, Engine: d.Engine, Fetcher: d.Fetcher}
	mux.HandleFunc("/extract", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: xh.Extract,
	}))
	mux.HandleFunc("/extract/batch", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: xh.ExtractBatch,
	}))

	// Records
	rh := RecordsHandler{DB: d.DB}
	mux.HandleFunc("/records", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))
	mux.HandleFunc("/records/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Stats,
	}))

	// Registered sources
	mux.HandleFunc("/sources", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, d.Engine.Sources())
		},
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   sh.SetIMAPPassword,
		http.MethodDelete: sh.DeleteIMAPPassword,
	}))

	// Mailbox poll
	mh := MailboxHandler{
		DB:         d.DB,
		CfgVal:     d.CfgVal,
		PollStatus: d.PollStatus,
		Hub:        d.Hub,
		RunPoll:    d.RunMailboxPoll,
	}
	mux.HandleFunc("/mailbox/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: mh.Status,
	}))
	mux.HandleFunc("/mailbox/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: mh.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{DB: d.DB, Engine: d.Engine}
	mux.HandleFunc("/healthz", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
