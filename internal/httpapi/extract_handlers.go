package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/extract"
	"jobsift-engine/internal/fetch"
	"jobsift-engine/internal/store"
)

type ExtractHandler struct {
	DB      *sql.DB
	Hub     *events.Hub
	Engine  *extract.Engine
	Fetcher *fetch.Fetcher
}

type extractReq struct {
	// Source forces dispatch to a specific adapter. When empty the source is
	// resolved from URL's hostname.
	Source string `json:"source,omitempty"`
	URL    string `json:"url,omitempty"`
	// HTML is the rendered page. When empty the page is fetched from URL.
	HTML string `json:"html,omitempty"`
	// NoStore skips persisting the result.
	NoStore bool `json:"no_store,omitempty"`
}

type batchReq struct {
	URLs      []string     `json:"urls,omitempty"`
	Documents []extractReq `json:"documents,omitempty"`
	NoStore   bool         `json:"no_store,omitempty"`
}

func (h ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	rec, status, code, msg := h.extractOne(r, req)
	if code != "" {
		WriteError(w, r, status, code, msg)
		return
	}
	if rec == nil {
		// extraction degraded to nothing; not a client error
		writeJSON(w, map[string]any{"record": nil})
		return
	}
	h.publishExtracted(r, rec)
	if !req.NoStore {
		h.storeRecord(r, rec)
	}
	writeJSON(w, map[string]any{"record": rec})
}

func (h ExtractHandler) ExtractBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	type item struct {
		URL    string            `json:"url,omitempty"`
		Record *domain.JobRecord `json:"record"`
		Error  string            `json:"error,omitempty"`
	}
	var out []item

	for _, res := range h.Fetcher.FetchAll(r.Context(), req.URLs) {
		it := item{URL: res.Address, Record: res.Record}
		if res.Err != nil {
			it.Error = res.Err.Error()
		}
		out = append(out, it)
	}

	for _, d := range req.Documents {
		d.NoStore = true // stored below, once
		rec, _, code, msg := h.extractOne(r, d)
		it := item{URL: d.URL, Record: rec}
		if code != "" {
			it.Error = msg
		}
		out = append(out, it)
	}

	for _, it := range out {
		if it.Record == nil {
			continue
		}
		h.publishExtracted(r, it.Record)
		if !req.NoStore {
			h.storeRecord(r, it.Record)
		}
	}
	writeJSON(w, map[string]any{"results": out})
}

func (h ExtractHandler) extractOne(r *http.Request, req extractReq) (rec *domain.JobRecord, status int, code, msg string) {
	switch {
	case req.HTML != "":
		doc, err := extract.ParseHTML(req.HTML, req.URL)
		if err != nil {
			return nil, http.StatusBadRequest, "invalid_html", err.Error()
		}
		if req.Source != "" {
			rec, err = h.Engine.Extract(req.Source, doc)
			var nf *extract.AdapterNotFoundError
			if errors.As(err, &nf) {
				return nil, http.StatusBadRequest, "adapter_not_found", nf.Error()
			}
			if err != nil {
				return nil, http.StatusInternalServerError, "extract_failed", err.Error()
			}
			return rec, 0, "", ""
		}
		if rec = h.Engine.ExtractFromAddress(doc); rec == nil && extract.SourceForAddress(req.URL) == "" {
			return nil, http.StatusBadRequest, "unsupported_source", "no adapter for address"
		}
		return rec, 0, "", ""

	case req.URL != "":
		rec, err := h.Fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			return nil, http.StatusBadGateway, "fetch_failed", err.Error()
		}
		if rec == nil && extract.SourceForAddress(req.URL) == "" {
			return nil, http.StatusBadRequest, "unsupported_source", "no adapter for address"
		}
		return rec, 0, "", ""
	}

	return nil, http.StatusBadRequest, "missing_input", "either html or url is required"
}

func (h ExtractHandler) publishExtracted(r *http.Request, rec *domain.JobRecord) {
	if h.Hub == nil {
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeRecordExtracted, 1, map[string]any{
		"source":  rec.Source,
		"title":   rec.Title,
		"isValid": rec.IsValid,
	}))
}

func (h ExtractHandler) storeRecord(r *http.Request, rec *domain.JobRecord) {
	if h.DB == nil {
		return
	}
	added, err := store.InsertRecordIfNew(r.Context(), h.DB, rec, time.Now().UTC())
	if err != nil || !added {
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeRecordStored, 1, map[string]any{
		"source":  rec.Source,
		"title":   rec.Title,
		"isValid": rec.IsValid,
	}))
}
