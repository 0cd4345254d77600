package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/google/uuid"
)

// Snapshot is an immutable view of the catalog as of one sync or reload.
type Snapshot struct {
	Version  uuid.UUID             `json:"version"`
	SyncedAt time.Time             `json:"synced_at"`
	Entries  []domain.CatalogEntry `json:"entries"`
}

// Sites lists distinct sites ordered by label.
func (s *Snapshot) Sites() []domain.Site {
	seen := make(map[string]struct{})
	sites := make([]domain.Site, 0)
	for _, e := range s.Entries {
		if _, ok := seen[e.SiteKey]; ok {
			continue
		}
		seen[e.SiteKey] = struct{}{}
		sites = append(sites, domain.Site{Code: e.SiteKey, Name: e.SiteLabel})
	}
	sort.SliceStable(sites, func(i, j int) bool { return sites[i].Name < sites[j].Name })
	return sites
}

// Registry owns the current catalog snapshot. Readers never observe a
// partially built snapshot: a new one is published with a single pointer swap.
type Registry struct {
	exec    storage.RawExecutor
	current atomic.Pointer[Snapshot]
	now     func() time.Time
}

func NewRegistry(exec storage.RawExecutor) *Registry {
	r := &Registry{exec: exec, now: time.Now}
	r.current.Store(&Snapshot{Entries: []domain.CatalogEntry{}})
	return r
}

func (r *Registry) Current() *Snapshot {
	return r.current.Load()
}

// Reload rebuilds the snapshot from the stored table, e.g. after a failed
// startup sync so the stale catalog is still served.
func (r *Registry) Reload(ctx context.Context) (*Snapshot, error) {
	table, err := r.exec.Exec(ctx, storage.SelectCatalog, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored catalog: %w", err)
	}
	return r.publish(storage.CatalogEntries(table)), nil
}

func (r *Registry) publish(entries []domain.CatalogEntry) *Snapshot {
	cp := make([]domain.CatalogEntry, len(entries))
	copy(cp, entries)

	s := &Snapshot{
		Version:  uuid.New(),
		SyncedAt: r.now(),
		Entries:  cp,
	}
	r.current.Store(s)
	return s
}
