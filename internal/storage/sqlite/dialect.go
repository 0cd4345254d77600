package sqlite

import (
	"fmt"

	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

// Dialect uses numbered ?NNN parameters so one bound value can be
// referenced more than once.
type Dialect struct{}

func (Dialect) Name() string { return "sqlite" }

func (Dialect) Placeholder(n int) string { return fmt.Sprintf("?%d", n) }

func (Dialect) DateOf(expr string) string { return fmt.Sprintf("DATE(%s)", expr) }

func (Dialect) DateParam(placeholder string) string { return placeholder }

var _ storage.Dialect = Dialect{}
