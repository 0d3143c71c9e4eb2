package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"jobsift-engine/internal/extract"
)

// HealthHandler reports liveness plus the state of the two dependencies a
// caller can act on: the record store and the registered adapter set.
type HealthHandler struct {
	DB     *sql.DB
	Engine *extract.Engine
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	}

	if h.Engine != nil {
		out["sources"] = h.Engine.Sources()
	}

	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			out["ok"] = false
			out["db"] = err.Error()
		} else {
			out["db"] = "ok"
		}
	}

	writeJSON(w, out)
}
