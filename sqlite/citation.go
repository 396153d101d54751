package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webcite"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webcite.CitationService = (*CitationService)(nil)

// CitationService implements webcite.CitationService using SQLite.
type CitationService struct {
	db *DB
}

// NewCitationService creates a new CitationService.
func NewCitationService(db *DB) *CitationService {
	return &CitationService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// Authors are stored as a single newline-joined column; author names can
// contain commas and semicolons, never newlines.
const authorSep = "\n"

// CreateCitation persists a new citation, assigning its ID, content hash,
// and creation time.
func (s *CitationService) CreateCitation(ctx context.Context, citation *webcite.Citation) error {
	if err := citation.Validate(); err != nil {
		return err
	}

	citation.ID = uuid.New().String()
	citation.CreatedAt = time.Now().UTC()
	citation.ContentHash = hashContent(citation.RIS)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO citations (id, source_url, title, authors, year, site_name, apa, ris, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, citation.ID, citation.SourceURL, citation.Title, strings.Join(citation.Authors, authorSep),
		citation.Year, citation.SiteName, citation.APA, citation.RIS, citation.ContentHash,
		citation.CreatedAt.Format(time.RFC3339))

	return err
}

// FindCitationByID retrieves a citation by ID.
func (s *CitationService) FindCitationByID(ctx context.Context, id string) (*webcite.Citation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, authors, year, site_name, apa, ris, content_hash, created_at
		FROM citations
		WHERE id = ?
	`, id)

	citation, err := scanCitation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, webcite.Errorf(webcite.ENOTFOUND, "citation not found")
	}
	if err != nil {
		return nil, err
	}

	return citation, nil
}

// FindCitations retrieves citations matching the filter, newest first.
func (s *CitationService) FindCitations(ctx context.Context, filter webcite.CitationFilter) ([]*webcite.Citation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, authors, year, site_name, apa, ris, content_hash, created_at FROM citations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var citations []*webcite.Citation
	for rows.Next() {
		citation, err := scanCitation(rows.Scan)
		if err != nil {
			return nil, err
		}
		citations = append(citations, citation)
	}

	return citations, rows.Err()
}

// DeleteCitation permanently removes a citation.
func (s *CitationService) DeleteCitation(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM citations WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return webcite.Errorf(webcite.ENOTFOUND, "citation not found")
	}

	return nil
}

// scanCitation scans one citations row using the provided Scan function.
func scanCitation(scan func(dest ...any) error) (*webcite.Citation, error) {
	var citation webcite.Citation
	var authors, createdAt string

	err := scan(&citation.ID, &citation.SourceURL, &citation.Title, &authors, &citation.Year,
		&citation.SiteName, &citation.APA, &citation.RIS, &citation.ContentHash, &createdAt)
	if err != nil {
		return nil, err
	}

	if authors != "" {
		citation.Authors = strings.Split(authors, authorSep)
	}

	citation.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &citation, nil
}
