package storage

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/crawl-report/internal/domain/query"
)

// Dialect hides the SQL differences between the supported stores.
type Dialect interface {
	Name() string
	// Placeholder returns the bind marker of the n-th (1-based) parameter.
	Placeholder(n int) string
	// DateOf extracts the calendar date of a timestamp expression.
	DateOf(expr string) string
	// DateParam casts a bound YYYY-MM-DD parameter for comparison with DateOf.
	DateParam(placeholder string) string
}

// Statement accumulates bound parameters while SQL text is composed.
// Values never end up in the SQL text.
type Statement struct {
	dialect Dialect
	args    []interface{}
}

func NewStatement(d Dialect) *Statement {
	return &Statement{dialect: d}
}

// Arg binds v and returns its placeholder.
func (s *Statement) Arg(v interface{}) string {
	s.args = append(s.args, v)
	return s.dialect.Placeholder(len(s.args))
}

func (s *Statement) DateArg(date string) string {
	return s.dialect.DateParam(s.Arg(date))
}

func (s *Statement) DateOf(expr string) string {
	return s.dialect.DateOf(expr)
}

func (s *Statement) Args() []interface{} {
	return s.args
}

// Where compiles f into a boolean SQL expression over the aliases
// d (documents) and c (catalog_entries).
func (s *Statement) Where(f query.Filter) (string, error) {
	switch v := f.(type) {
	case nil, query.Nothing:
		return "1 = 0", nil
	case query.All:
		return "1 = 1", nil
	case query.BySites:
		if len(v.Keys) == 0 {
			return "1 = 0", nil
		}
		marks := make([]string, len(v.Keys))
		for i, k := range v.Keys {
			marks[i] = s.Arg(k)
		}
		return fmt.Sprintf("d.site_key IN (%s)", strings.Join(marks, ", ")), nil
	case query.ByKeyword:
		p := s.Arg("%" + EscapeLike(v.Keyword) + "%")
		return fmt.Sprintf("(d.title LIKE %s ESCAPE '%c' OR d.summary LIKE %s ESCAPE '%c')", p, likeEscape, p, likeEscape), nil
	case query.CollectedBetween:
		col := s.DateOf("d.collected_at")
		if v.From == v.To {
			return fmt.Sprintf("%s = %s", col, s.DateArg(v.From)), nil
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", col, s.DateArg(v.From), s.DateArg(v.To)), nil
	case query.And:
		left, err := s.Where(v.Left)
		if err != nil {
			return "", err
		}
		right, err := s.Where(v.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s AND %s)", left, right), nil
	default:
		return "", fmt.Errorf("unsupported filter %T", f)
	}
}

// likeEscape is the LIKE escape character. It is not a backslash so the
// ESCAPE literal reads the same whatever standard_conforming_strings says.
const likeEscape = '!'

var likeEscaper = strings.NewReplacer(
	string(likeEscape), string(likeEscape)+string(likeEscape),
	"%", string(likeEscape)+"%",
	"_", string(likeEscape)+"_",
)

// EscapeLike makes s match literally inside a LIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
