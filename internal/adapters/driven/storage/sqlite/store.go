// Package sqlite provides SQLite-backed implementations of the driven
// storage ports. All data for one installation lives in a single
// database file under the sitewright data directory.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// site, catalog and document store interfaces through wrapper types.
type Store struct {
	db      *sql.DB
	path    string
	dataDir string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sitewright/data/sitewright.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sitewright", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sitewright.db")

	// WAL keeps reads snappy while another process holds the write lock.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:      db,
		path:    dbPath,
		dataDir: dataDir,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DataDir returns the data directory holding the database.
func (s *Store) DataDir() string {
	return s.dataDir
}

// SiteStore returns a SiteStore interface backed by this store.
func (s *Store) SiteStore() driven.SiteStore {
	return &siteStore{store: s}
}

// CatalogStore returns a CatalogStore interface backed by this store.
func (s *Store) CatalogStore() driven.CatalogStore {
	return &catalogStore{store: s}
}

// SiteDocumentStore returns a SiteDocumentStore interface backed by
// this store.
func (s *Store) SiteDocumentStore() driven.SiteDocumentStore {
	return &siteDocumentStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Site Store ====================

// siteStore implements driven.SiteStore.
type siteStore struct {
	store *Store
}

var _ driven.SiteStore = (*siteStore)(nil)

// Save stores or updates a site.
func (s *siteStore) Save(ctx context.Context, site domain.Site) error {
	now := time.Now().UTC()
	if site.CreatedAt.IsZero() {
		site.CreatedAt = now
	}
	if site.UpdatedAt.IsZero() {
		site.UpdatedAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at
	`, site.ID, site.Name, site.CreatedAt, site.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving site: %w", err)
	}
	return nil
}

// Get retrieves a site by ID.
func (s *siteStore) Get(ctx context.Context, id string) (*domain.Site, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sites WHERE id = ?
	`, id)
	return scanSite(row)
}

// List returns all sites ordered by creation time.
func (s *siteStore) List(ctx context.Context) ([]domain.Site, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sites ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sites: %w", err)
	}
	defer rows.Close()

	var sites []domain.Site //nolint:prealloc // size unknown from query
	for rows.Next() {
		var site domain.Site
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&site.ID, &site.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}
		site.CreatedAt = createdAt.Time
		site.UpdatedAt = updatedAt.Time
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sites: %w", err)
	}
	return sites, nil
}

// ActiveSite returns the currently active site.
func (s *siteStore) ActiveSite(ctx context.Context) (*domain.Site, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM sites WHERE is_active = 1
	`)
	site, err := scanSite(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoActiveSite
	}
	return site, err
}

// SetActive marks the given site as active, deactivating all others.
func (s *siteStore) SetActive(ctx context.Context, id string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "UPDATE sites SET is_active = 0 WHERE is_active = 1"); err != nil {
		return fmt.Errorf("deactivating sites: %w", err)
	}
	res, err := tx.ExecContext(ctx, "UPDATE sites SET is_active = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("activating site: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("site %s: %w", id, domain.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func scanSite(row *sql.Row) (*domain.Site, error) {
	var site domain.Site
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&site.ID, &site.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning site: %w", err)
	}
	site.CreatedAt = createdAt.Time
	site.UpdatedAt = updatedAt.Time
	return &site, nil
}

// ==================== Catalog Store ====================

// catalogStore implements driven.CatalogStore. The catalog is written
// as a whole inside one transaction, so bulk changes are atomic from
// the caller's perspective.
type catalogStore struct {
	store *Store
}

var _ driven.CatalogStore = (*catalogStore)(nil)

// Load returns the catalog for a site in insertion order.
func (s *catalogStore) Load(ctx context.Context, siteID string) ([]domain.ServiceRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, description, category, active
		FROM services WHERE site_id = ?
		ORDER BY position
	`, siteID)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	records := []domain.ServiceRecord{}
	for rows.Next() {
		var rec domain.ServiceRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Category, &rec.Active); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}
	return records, nil
}

// Save replaces the catalog for a site with the given sequence.
func (s *catalogStore) Save(ctx context.Context, siteID string, records []domain.ServiceRecord) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM services WHERE site_id = ?", siteID); err != nil {
		return fmt.Errorf("clearing services: %w", err)
	}
	for i, rec := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO services (site_id, position, id, title, description, category, active)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, siteID, i, rec.ID, rec.Title, rec.Description, rec.Category, rec.Active)
		if err != nil {
			return fmt.Errorf("inserting service %s: %w", rec.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Delete removes the catalog for a site.
func (s *catalogStore) Delete(ctx context.Context, siteID string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM services WHERE site_id = ?", siteID); err != nil {
		return fmt.Errorf("deleting services: %w", err)
	}
	return nil
}

// ==================== Site Document Store ====================

// siteDocumentStore implements driven.SiteDocumentStore. The document
// is stored as one JSON payload per site.
type siteDocumentStore struct {
	store *Store
}

var _ driven.SiteDocumentStore = (*siteDocumentStore)(nil)

// Load retrieves the document for a site.
func (s *siteDocumentStore) Load(ctx context.Context, siteID string) (*domain.SiteDocument, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT doc FROM site_documents WHERE site_id = ?
	`, siteID)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning site document: %w", err)
	}

	var doc domain.SiteDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("%w: unmarshalling site document: %v", domain.ErrStorage, err)
	}
	return &doc, nil
}

// Save stores or replaces the document for a site.
func (s *siteDocumentStore) Save(ctx context.Context, siteID string, doc *domain.SiteDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling site document: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO site_documents (site_id, doc, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(site_id) DO UPDATE SET
			doc = excluded.doc,
			updated_at = excluded.updated_at
	`, siteID, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving site document: %w", err)
	}
	return nil
}

// Delete removes the document for a site.
func (s *siteDocumentStore) Delete(ctx context.Context, siteID string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM site_documents WHERE site_id = ?", siteID); err != nil {
		return fmt.Errorf("deleting site document: %w", err)
	}
	return nil
}
