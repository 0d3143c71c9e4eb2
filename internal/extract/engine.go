package extract

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"jobsift-engine/internal/domain"
)

// Extractor is the one capability a registered source provides.
type Extractor interface {
	Source() string
	Extract(doc Document) *domain.JobRecord
}

// AdapterNotFoundError reports extraction against an unknown source id. It is
// the only hard error the engine surfaces; everything else degrades.
type AdapterNotFoundError struct {
	Source string
}

func (e *AdapterNotFoundError) Error() string {
	return fmt.Sprintf("no adapter registered for source %q", e.Source)
}

// hostSources maps hostnames (and their subdomains) to source ids.
var hostSources = map[string]string{
	"linkedin.com":  "linkedin",
	"indeed.com":    "indeed",
	"glassdoor.com": "glassdoor",
}

// Engine owns the adapter registry and dispatches extraction by source id.
// The registry is populated at construction; Register afterwards must be
// serialized against concurrent Extract calls (single-writer discipline).
type Engine struct {
	adapters map[string]Extractor
}

// NewEngine returns an engine with the default source set registered.
func NewEngine(extraSkills ...string) *Engine {
	e := &Engine{adapters: make(map[string]Extractor)}
	for _, a := range []*Adapter{
		NewLinkedIn(extraSkills...),
		NewIndeed(extraSkills...),
		NewGlassdoor(extraSkills...),
	} {
		e.Register(a.Source(), a)
	}
	return e
}

// NewEmptyEngine returns an engine with no adapters registered.
func NewEmptyEngine() *Engine {
	return &Engine{adapters: make(map[string]Extractor)}
}

// Register inserts or overwrites the mapping for id.
func (e *Engine) Register(id string, a Extractor) {
	e.adapters[id] = a
}

// Sources lists the registered source ids.
func (e *Engine) Sources() []string {
	out := make([]string, 0, len(e.adapters))
	for id := range e.adapters {
		out = append(out, id)
	}
	return out
}

// Extract dispatches to the adapter for id. An unknown id is an
// AdapterNotFoundError; a panic during extraction is caught, logged, and
// downgraded to a nil record so one bad document never kills a batch.
func (e *Engine) Extract(id string, doc Document) (rec *domain.JobRecord, err error) {
	a, ok := e.adapters[id]
	if !ok {
		return nil, &AdapterNotFoundError{Source: id}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[extract:%s] recovered: %v", id, r)
			rec, err = nil, nil
		}
	}()

	return a.Extract(doc), nil
}

// ExtractFromAddress resolves the source id from the document's address via
// the fixed hostname table, then delegates to Extract. Nil when no hostname
// mapping matches.
func (e *Engine) ExtractFromAddress(doc Document) *domain.JobRecord {
	id := SourceForAddress(doc.Address())
	if id == "" {
		return nil
	}
	rec, err := e.Extract(id, doc)
	if err != nil {
		return nil
	}
	return rec
}

// SourceForAddress maps an address to a known source id, or "".
func SourceForAddress(addr string) string {
	u, err := url.Parse(strings.TrimSpace(addr))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	for dom, id := range hostSources {
		if host == dom || strings.HasSuffix(host, "."+dom) {
			return id
		}
	}
	return ""
}
