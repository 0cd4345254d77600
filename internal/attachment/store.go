package attachment

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

// Store lists attachment rows and resolves the files the crawler saved
// under <root>/<site>/<page>_<seq>/<file>.
type Store struct {
	exec    storage.RawExecutor
	dialect storage.Dialect
	root    string
}

func NewStore(exec storage.RawExecutor, dialect storage.Dialect, root string) *Store {
	return &Store{exec: exec, dialect: dialect, root: root}
}

// List returns the attachments of the document addressed by key. When the
// crawler stored the document more than once the oldest row owns them.
func (s *Store) List(ctx context.Context, key domain.DocumentKey) []domain.Attachment {
	st := storage.NewStatement(s.dialect)
	sql := fmt.Sprintf(`SELECT id, parent_id, save_folder, save_file_name
		FROM attachments
		WHERE parent_id = (
			SELECT MIN(id) FROM documents
			WHERE site_key = %s AND page_key = %s AND sequence_id = %s
		)
		ORDER BY id`, st.Arg(key.SiteKey), st.Arg(key.PageKey), st.Arg(key.SequenceID))

	table, err := s.exec.Exec(ctx, sql, st.Args(), nil)
	if err != nil {
		slog.Error("Failed to list attachments", "site", key.SiteKey, "page", key.PageKey, "seq", key.SequenceID, "error", err)
		return []domain.Attachment{}
	}

	list := make([]domain.Attachment, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		list = append(list, domain.Attachment{
			ID:           table.Int(i, "id"),
			ParentID:     table.Int(i, "parent_id"),
			SaveFolder:   table.String(i, "save_folder"),
			SaveFileName: table.String(i, "save_file_name"),
		})
	}
	return list
}

// Resolve returns the path of a stored attachment file. Every segment must
// be a plain name so the result stays under the root.
func (s *Store) Resolve(key domain.DocumentKey, fileName string) (string, error) {
	for _, seg := range []string{key.SiteKey, key.PageKey, key.SequenceID, fileName} {
		if !plainName(seg) {
			return "", apperr.NewValidation(fmt.Sprintf("invalid attachment path segment %q", seg))
		}
	}

	path := filepath.Join(s.root, key.SiteKey, key.PageKey+"_"+key.SequenceID, fileName)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Attachment not found", "path", path)
			return "", apperr.NewNotFound("attachment", fileName)
		}
		return "", fmt.Errorf("failed to stat attachment: %w", err)
	}
	if info.IsDir() {
		return "", apperr.NewNotFound("attachment", fileName)
	}
	return path, nil
}

func plainName(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`) && s == filepath.Base(s)
}
