package testing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/sqlite"
)

// SQLiteFixture is a throwaway crawler database with helpers to seed it.
type SQLiteFixture struct {
	DB       *sqlite.DB
	Executor *sqlite.RawExecutor
	Catalog  *sqlite.CatalogWriter

	tb testing.TB
}

// Doc describes a document row to seed. Empty CollectedAt defaults to
// RegistrationDate at 09:00.
type Doc struct {
	SiteKey          string
	PageKey          string
	SequenceID       string
	Title            string
	RegistrationDate string
	CollectedAt      string
	OriginURL        string
	Summary          string
	Category         string
}

func NewSQLiteFixture(tb testing.TB) *SQLiteFixture {
	tb.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Config{Path: filepath.Join(tb.TempDir(), "crawl.db")})
	if err != nil {
		tb.Fatalf("failed to open sqlite fixture: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.EnsureSchema(ctx); err != nil {
		tb.Fatalf("failed to create schema: %v", err)
	}

	return &SQLiteFixture{
		DB:       db,
		Executor: sqlite.NewRawExecutor(db),
		Catalog:  sqlite.NewCatalogWriter(db),
		tb:       tb,
	}
}

func (f *SQLiteFixture) SeedCatalog(entries ...domain.CatalogEntry) {
	f.tb.Helper()
	if err := f.Catalog.ReplaceCatalog(context.Background(), entries); err != nil {
		f.tb.Fatalf("failed to seed catalog: %v", err)
	}
}

func (f *SQLiteFixture) InsertDocument(d Doc) int64 {
	f.tb.Helper()
	collected := d.CollectedAt
	if collected == "" {
		collected = d.RegistrationDate + " 09:00:00"
	}
	res, err := f.DB.SQL().Exec(`
		INSERT INTO documents (site_key, page_key, sequence_id, title, registration_date, collected_at, origin_url, summary, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.SiteKey, d.PageKey, d.SequenceID, d.Title, d.RegistrationDate, collected, d.OriginURL, d.Summary, d.Category,
	)
	if err != nil {
		f.tb.Fatalf("failed to insert document: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		f.tb.Fatalf("failed to read document id: %v", err)
	}
	return id
}

func (f *SQLiteFixture) InsertAttachment(parentID int64, folder, fileName, collectedAt string) int64 {
	f.tb.Helper()
	res, err := f.DB.SQL().Exec(`
		INSERT INTO attachments (parent_id, save_folder, save_file_name, collected_at)
		VALUES (?, ?, ?, ?)`,
		parentID, folder, fileName, collectedAt,
	)
	if err != nil {
		f.tb.Fatalf("failed to insert attachment: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// Exec runs a raw statement against the fixture database.
func (f *SQLiteFixture) Exec(sql string, args ...interface{}) {
	f.tb.Helper()
	if _, err := f.DB.SQL().Exec(sql, args...); err != nil {
		f.tb.Fatalf("failed to exec %q: %v", sql, err)
	}
}
