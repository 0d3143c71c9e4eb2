package fetch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/extract"
)

// Fetcher pulls posting pages over HTTP and runs them through the engine.
// The extraction core never does I/O itself; this is the calling layer that
// supplies documents, so timeouts and rate limits live here.
type Fetcher struct {
	Engine  *extract.Engine
	Limiter *HostLimiter

	HC            *http.Client
	UserAgent     string
	MaxConcurrent int
}

func New(engine *extract.Engine, limiter *HostLimiter, timeout time.Duration, userAgent string, maxConcurrent int) *Fetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Fetcher{
		Engine:        engine,
		Limiter:       limiter,
		HC:            &http.Client{Timeout: timeout},
		UserAgent:     userAgent,
		MaxConcurrent: maxConcurrent,
	}
}

// Fetch GETs the address, parses it, and dispatches by hostname. A nil
// record with nil error means the address has no registered source or the
// page didn't yield one.
func (f *Fetcher) Fetch(ctx context.Context, addr string) (*domain.JobRecord, error) {
	if extract.SourceForAddress(addr) == "" {
		return nil, nil
	}

	if f.Limiter != nil {
		if err := f.Limiter.WaitURL(ctx, addr); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", addr, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	res, err := f.HC.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", addr, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", addr, res.StatusCode)
	}

	doc, err := extract.NewHTMLDocument(res.Body, addr)
	if err != nil {
		return nil, err
	}
	return f.Engine.ExtractFromAddress(doc), nil
}

// Result pairs one address with its outcome.
type Result struct {
	Address string
	Record  *domain.JobRecord
	Err     error
}

// FetchAll runs Fetch over the addresses with bounded concurrency.
// Per-address failures land in the result slice; they never cancel siblings.
func (f *Fetcher) FetchAll(ctx context.Context, addrs []string) []Result {
	out := make([]Result, len(addrs))

	var g errgroup.Group
	g.SetLimit(f.MaxConcurrent)

	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			rec, err := f.Fetch(ctx, addr)
			if err != nil {
				log.Printf("[fetch] %s: %v", addr, err)
			}
			out[i] = Result{Address: addr, Record: rec, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return out
}
