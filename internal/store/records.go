package store

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobsift-engine/internal/domain"
)

// Record is the flat row shape served to API consumers.
type Record struct {
	ID          int64    `json:"id"`
	Source      string   `json:"source"`
	SourceID    string   `json:"sourceId"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	IsRemote    bool     `json:"isRemote"`
	SalaryMin   *float64 `json:"salaryMin"`
	SalaryMax   *float64 `json:"salaryMax"`
	Currency    string   `json:"currency,omitempty"`
	Period      string   `json:"period,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	JobID       string   `json:"jobId,omitempty"`
	PostedAt    string   `json:"postedAt,omitempty"`
	IsValid     bool     `json:"isValid"`
	ExtractedAt string   `json:"extractedAt"`
}

type ListOpts struct {
	Source string // filter, empty = all
	Valid  *bool  // filter, nil = all
	Window string // 24h | 7d | all
	Limit  int
}

// SourceID derives the dedup key for a record: source-qualified job id when
// the adapter found one, otherwise a hash of the record's address.
func SourceID(rec *domain.JobRecord) string {
	if rec.Metadata.JobID != "" {
		return rec.Source + ":" + rec.Metadata.JobID
	}
	if strings.TrimSpace(rec.URL) != "" {
		return rec.Source + ":url:" + hashString(strings.TrimSpace(rec.URL))
	}
	return ""
}

func hashString(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// InsertRecordIfNew persists the record unless its source_id is already
// present. Records without any derivable source_id are always inserted.
func InsertRecordIfNew(ctx context.Context, db *sql.DB, rec *domain.JobRecord, extractedAt time.Time) (added bool, err error) {
	if rec == nil {
		return false, fmt.Errorf("nil record")
	}
	if extractedAt.IsZero() {
		extractedAt = time.Now().UTC()
	}

	var salaryMin, salaryMax *float64
	currency, period := "", ""
	if rec.Salary != nil {
		salaryMin, salaryMax = rec.Salary.Min, rec.Salary.Max
		currency = rec.Salary.Currency
		period = string(rec.Salary.Period)
	}

	postedAt := ""
	if rec.Metadata.PostedAt != nil {
		postedAt = rec.Metadata.PostedAt.UTC().Format(time.RFC3339)
	}

	skillsB, _ := json.Marshal(rec.Skills)
	errsB, _ := json.Marshal(rec.ValidationErrors)

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO records(
  source, source_id, url, title, company, location, is_remote,
  salary_min, salary_max, salary_currency, salary_period,
  description, skills, job_id, posted_at, is_valid, validation_errors, extracted_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		rec.Source,
		SourceID(rec),
		rec.URL,
		rec.Title,
		rec.Company.Name,
		rec.Location.Formatted,
		rec.Location.IsRemote,
		salaryMin,
		salaryMax,
		currency,
		period,
		rec.Description,
		string(skillsB),
		rec.Metadata.JobID,
		postedAt,
		rec.IsValid,
		string(errsB),
		extractedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func ListRecords(ctx context.Context, db *sql.DB, opts ListOpts) ([]Record, error) {
	if opts.Limit <= 0 || opts.Limit > 5000 {
		opts.Limit = 500
	}

	var where []string
	var args []any
	switch opts.Window {
	case "24h":
		where = append(where, "extracted_at >= datetime('now','-24 hours')")
	case "all":
		// no filter
	default:
		where = append(where, "extracted_at >= datetime('now','-7 days')")
	}
	if opts.Source != "" {
		where = append(where, "source = ?")
		args = append(args, opts.Source)
	}
	if opts.Valid != nil {
		where = append(where, "is_valid = ?")
		args = append(args, *opts.Valid)
	}

	q := `
SELECT id, source, source_id, url, title, company, location, is_remote,
       salary_min, salary_max, salary_currency, salary_period,
       skills, job_id, COALESCE(posted_at,''), is_valid, extracted_at
FROM records`
	if len(where) > 0 {
		q += "\nWHERE " + strings.Join(where, " AND ")
	}
	q += "\nORDER BY extracted_at DESC\nLIMIT ?"
	args = append(args, opts.Limit)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var skillsJSON string
		if err := rows.Scan(
			&r.ID, &r.Source, &r.SourceID, &r.URL, &r.Title, &r.Company,
			&r.Location, &r.IsRemote, &r.SalaryMin, &r.SalaryMax,
			&r.Currency, &r.Period, &skillsJSON, &r.JobID, &r.PostedAt,
			&r.IsValid, &r.ExtractedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(skillsJSON), &r.Skills)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountBySource returns per-source totals plus how many of each are valid.
func CountBySource(ctx context.Context, db *sql.DB) (map[string][2]int, error) {
	rows, err := db.QueryContext(ctx, `
SELECT source, COUNT(*), SUM(is_valid)
FROM records
GROUP BY source;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][2]int{}
	for rows.Next() {
		var src string
		var total, valid int
		if err := rows.Scan(&src, &total, &valid); err != nil {
			return nil, err
		}
		out[src] = [2]int{total, valid}
	}
	return out, rows.Err()
}
