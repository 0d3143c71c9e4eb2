package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobsift-engine/internal/extract"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const postingHTML = `<html><body>
  <h1 class="top-card-layout__title">Senior Software Engineer</h1>
  <a class="topcard__org-name-link" href="/company/acme">Acme</a>
  <span class="topcard__flavor--bullet">Austin, TX</span>
</body></html>`

func newTestFetcher(rt roundTripFunc) *Fetcher {
	f := New(extract.NewEngine(), nil, 5*time.Second, "test-agent", 2)
	f.HC = &http.Client{Transport: rt}
	return f
}

func TestFetchExtractsPosting(t *testing.T) {
	var gotUA string
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		gotUA = r.Header.Get("User-Agent")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(postingHTML)),
			Header:     make(http.Header),
		}, nil
	})

	rec, err := f.Fetch(context.Background(), "https://www.linkedin.com/jobs/view/4011223344")
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil {
		t.Fatal("record is nil")
	}
	if rec.Title != "Senior Software Engineer" || rec.Source != "linkedin" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Metadata.JobID != "4011223344" {
		t.Errorf("job id = %q", rec.Metadata.JobID)
	}
	if gotUA != "test-agent" {
		t.Errorf("user agent = %q", gotUA)
	}
}

func TestFetchSkipsUnknownHost(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		t.Error("unexpected request for unmapped host")
		return nil, nil
	})

	rec, err := f.Fetch(context.Background(), "https://example.com/careers/123")
	if rec != nil || err != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", rec, err)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader("blocked")),
			Header:     make(http.Header),
		}, nil
	})

	rec, err := f.Fetch(context.Background(), "https://www.indeed.com/viewjob?jk=abc")
	if rec != nil {
		t.Errorf("record = %+v, want nil", rec)
	}
	if err == nil || !strings.Contains(err.Error(), "status 403") {
		t.Errorf("err = %v, want status 403", err)
	}
}

func TestFetchAllPartialFailure(t *testing.T) {
	f := newTestFetcher(func(r *http.Request) (*http.Response, error) {
		status := http.StatusOK
		if strings.Contains(r.URL.Host, "indeed") {
			status = http.StatusInternalServerError
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(postingHTML)),
			Header:     make(http.Header),
		}, nil
	})

	results := f.FetchAll(context.Background(), []string{
		"https://www.linkedin.com/jobs/view/1",
		"https://www.indeed.com/viewjob?jk=2",
	})
	if len(results) != 2 {
		t.Fatalf("len(results) = %d", len(results))
	}
	if results[0].Record == nil || results[0].Err != nil {
		t.Errorf("linkedin result = %+v", results[0])
	}
	if results[1].Record != nil || results[1].Err == nil {
		t.Errorf("indeed result should fail, got %+v", results[1])
	}
}
