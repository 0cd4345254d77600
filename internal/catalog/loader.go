package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"gopkg.in/yaml.v3"
)

// PageSpec is one crawled page of a site in the declarative description.
type PageSpec struct {
	ID        string `yaml:"id"`
	Desc      string `yaml:"desc"`
	DetailURL string `yaml:"detail_url"`
}

// SiteSpec is one site of the declarative description. Keys other than
// h_name, url and pages belong to the crawler and are ignored.
type SiteSpec struct {
	Key   string     `yaml:"-"`
	Label string     `yaml:"h_name"`
	URL   string     `yaml:"url"`
	Pages []PageSpec `yaml:"pages"`
}

// Source is the parsed site/page description, sites in file order.
type Source struct {
	Sites []SiteSpec
}

type YAMLLoader struct {
	reader io.Reader
}

func NewYAMLLoader(reader io.Reader) *YAMLLoader {
	return &YAMLLoader{
		reader: reader,
	}
}

// Load decodes through yaml.Node so the site order of the mapping survives.
// An empty document yields an empty Source.
func (l *YAMLLoader) Load() (*Source, error) {
	decoder := yaml.NewDecoder(l.reader)

	var root yaml.Node
	if err := decoder.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Source{}, nil
		}
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &Source{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return &Source{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: catalog source must be a mapping of sites", node.Line)
	}

	src := &Source{Sites: make([]SiteSpec, 0, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var site SiteSpec
		if !(valueNode.Kind == yaml.ScalarNode && valueNode.Tag == "!!null") {
			if err := valueNode.Decode(&site); err != nil {
				return nil, fmt.Errorf("site %q: %w", keyNode.Value, err)
			}
		}
		site.Key = keyNode.Value
		src.Sites = append(src.Sites, site)
	}

	return src, nil
}

// LoadFile reads the description at path. A missing file is an error.
func LoadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewYAMLLoader(f).Load()
}

// Entries flattens the source into catalog rows in declaration order.
// A repeated (site, page) pair keeps its first declaration.
func (s *Source) Entries() []domain.CatalogEntry {
	type key struct{ site, page string }
	seen := make(map[key]struct{})

	var entries []domain.CatalogEntry
	for _, site := range s.Sites {
		for _, page := range site.Pages {
			k := key{site.Key, page.ID}
			if _, dup := seen[k]; dup {
				slog.Warn("Duplicate catalog page ignored", "site", site.Key, "page", page.ID)
				continue
			}
			seen[k] = struct{}{}

			entries = append(entries, domain.CatalogEntry{
				SiteKey:   site.Key,
				PageKey:   page.ID,
				SiteLabel: site.Label,
				PageLabel: page.Desc,
				SiteURL:   site.URL,
				DetailURL: page.DetailURL,
			})
		}
	}
	return entries
}
