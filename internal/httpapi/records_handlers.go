package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"jobsift-engine/internal/store"
)

type RecordsHandler struct {
	DB *sql.DB
}

func (h RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := store.ListOpts{
		Source: q.Get("source"),
		Window: q.Get("window"),
	}
	if v := q.Get("valid"); v != "" {
		b := v == "1" || v == "true"
		opts.Valid = &b
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}

	recs, err := store.ListRecords(r.Context(), h.DB, opts)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, recs)
}

func (h RecordsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := store.CountBySource(r.Context(), h.DB)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	type stat struct {
		Total int `json:"total"`
		Valid int `json:"valid"`
	}
	out := map[string]stat{}
	for src, c := range counts {
		out[src] = stat{Total: c[0], Valid: c[1]}
	}
	writeJSON(w, out)
}
