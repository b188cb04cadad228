package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/progcrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ progcrawl.ResultService = (*ResultService)(nil)

// ResultService implements progcrawl.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateResult persists a new result, assigning its ID and content hash.
func (s *ResultService) CreateResult(ctx context.Context, result *progcrawl.CrawlResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	result.ContentHash = hashContent(result.RawText)
	if result.CrawledAt.IsZero() {
		result.CrawledAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, url, title, region, domain, raw_text, depth, program_name,
			services, eligibility, contact_info, funding_source, content_hash, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.URL, result.Title, result.Region, result.Domain, result.RawText,
		result.Depth, result.ProgramName, joinServices(result.Services), result.Eligibility,
		result.ContactInfo, result.FundingSource, result.ContentHash,
		result.CrawledAt.Format(time.RFC3339))

	return err
}

// FindResultByID retrieves a result by ID.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*progcrawl.CrawlResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, region, domain, raw_text, depth, program_name,
			services, eligibility, contact_info, funding_source, content_hash, crawled_at
		FROM results
		WHERE id = ?
	`, id)

	result, err := scanResult(row.Scan)
	if err == sql.ErrNoRows {
		return nil, progcrawl.Errorf(progcrawl.ENOTFOUND, "result not found")
	}
	return result, err
}

// FindResults retrieves results matching the filter, newest first.
func (s *ResultService) FindResults(ctx context.Context, filter progcrawl.ResultFilter) ([]*progcrawl.CrawlResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, title, region, domain, raw_text, depth, program_name,
		services, eligibility, contact_info, funding_source, content_hash, crawled_at
		FROM results WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Region != nil {
		query.WriteString(" AND region = ?")
		args = append(args, *filter.Region)
	}

	query.WriteString(" ORDER BY crawled_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*progcrawl.CrawlResult
	for rows.Next() {
		result, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// DeleteResult permanently removes a result.
func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return progcrawl.Errorf(progcrawl.ENOTFOUND, "result not found")
	}

	return nil
}

// scanResult scans one row into a CrawlResult using the provided scan
// function, so it works for both sql.Row and sql.Rows.
func scanResult(scan func(dest ...any) error) (*progcrawl.CrawlResult, error) {
	var r progcrawl.CrawlResult
	var services, crawledAt string

	if err := scan(&r.ID, &r.URL, &r.Title, &r.Region, &r.Domain, &r.RawText, &r.Depth,
		&r.ProgramName, &services, &r.Eligibility, &r.ContactInfo, &r.FundingSource,
		&r.ContentHash, &crawledAt); err != nil {
		return nil, err
	}

	r.Services = splitServices(services)

	var err error
	r.CrawledAt, err = time.Parse(time.RFC3339, crawledAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse crawled_at: %w", err)
	}

	return &r, nil
}

// joinServices flattens the services list for storage. Service keywords
// never contain newlines.
func joinServices(services []string) string {
	return strings.Join(services, "\n")
}

// splitServices reverses joinServices; an empty column yields nil.
func splitServices(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
