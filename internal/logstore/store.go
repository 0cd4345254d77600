package logstore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
)

const (
	DefaultDays = 7

	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
	logExt          = ".log"
)

// DefaultFilePrefix names crawler logs as law_crawler_YYYY_MM_DD.log.
const DefaultFilePrefix = "law_crawler_"

type DateOption struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type File struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	ModifiedTime string `json:"modified_time"`

	modified time.Time
}

type Content struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// Store reads crawler log files from one directory. It never writes.
type Store struct {
	dir    string
	prefix string
	now    func() time.Time
	loc    *time.Location
}

func NewStore(dir string, now func() time.Time, loc *time.Location) *Store {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Store{dir: dir, prefix: DefaultFilePrefix, now: now, loc: loc}
}

func (s *Store) Dir() string {
	return s.dir
}

// AvailableDates lists today and the days-1 days before it, newest first.
func (s *Store) AvailableDates(days int) []DateOption {
	if days <= 0 {
		days = DefaultDays
	}
	today := s.now().In(s.loc)
	dates := make([]DateOption, 0, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -i).Format(dateLayout)
		dates = append(dates, DateOption{Date: d, Label: d})
	}
	return dates
}

// Files lists *.log files, most recently modified first. A missing
// directory has no files.
func (s *Store) Files() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Crawler log directory does not exist", "dir", s.dir)
			return []File{}, nil
		}
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != logExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			slog.Warn("Failed to stat log file", "file", e.Name(), "error", err)
			continue
		}
		files = append(files, File{
			Filename:     e.Name(),
			Path:         filepath.Join(s.dir, e.Name()),
			ModifiedTime: info.ModTime().In(s.loc).Format(timestampLayout),
			modified:     info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].modified.After(files[j].modified)
	})
	return files, nil
}

// FileNameForDate maps YYYY-MM-DD to the crawler's log file name.
func (s *Store) FileNameForDate(date string) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", apperr.NewValidationWrap("date must be YYYY-MM-DD", err)
	}
	return s.prefix + d.Format("2006_01_02") + logExt, nil
}

func (s *Store) ReadByDate(date string) (*Content, error) {
	name, err := s.FileNameForDate(date)
	if err != nil {
		return nil, err
	}
	return s.ReadFile(name)
}

// ReadFile returns the content of a log file in the directory. Names that
// are not plain *.log file names are rejected.
func (s *Store) ReadFile(name string) (*Content, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewNotFound("log file", name)
		}
		return nil, fmt.Errorf("failed to read log file %s: %w", name, err)
	}

	return &Content{
		Content:  strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
		Path:     path,
		Filename: name,
	}, nil
}

func validateName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == ".." {
		return apperr.NewValidation(fmt.Sprintf("invalid log file name %q", name))
	}
	if filepath.Ext(name) != logExt {
		return apperr.NewValidation(fmt.Sprintf("%q is not a log file", name))
	}
	return nil
}
