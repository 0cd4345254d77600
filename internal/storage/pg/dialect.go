package pg

import (
	"fmt"

	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
)

type Dialect struct{}

func (Dialect) Name() string { return "postgres" }

func (Dialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (Dialect) DateOf(expr string) string { return fmt.Sprintf("(%s)::date", expr) }

func (Dialect) DateParam(placeholder string) string { return placeholder + "::date" }

var _ storage.Dialect = Dialect{}
