// Package listing parses the free-text search and ordering query parameters
// shared by every list endpoint and applies them to a gorm query.
package listing

import (
	"net/url"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const (
	SearchParam   = "search"
	OrderingParam = "ordering"
)

type Params struct {
	Search   string
	Ordering []string
}

// Spec declares how a resource can be searched and sorted.
// SearchColumns are SQL expressions matched with a case-insensitive LIKE;
// OrderColumns maps public ordering names to SQL expressions.
type Spec struct {
	SearchColumns []string
	OrderColumns  map[string]string
	DefaultOrder  string
}

func FromQuery(q url.Values) Params {
	p := Params{Search: strings.TrimSpace(q.Get(SearchParam))}
	for _, raw := range strings.Split(q.Get(OrderingParam), ",") {
		if field := strings.TrimSpace(raw); field != "" {
			p.Ordering = append(p.Ordering, field)
		}
	}
	return p
}

// Scope returns a gorm scope applying p under spec. Search terms are ANDed,
// each one ORed across the search columns. Unknown ordering fields are ignored.
func (s Spec) Scope(p Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(s.SearchColumns) > 0 {
			for _, term := range SearchTerms(p.Search) {
				pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
				clauses := make([]string, len(s.SearchColumns))
				args := make([]interface{}, len(s.SearchColumns))
				for i, col := range s.SearchColumns {
					clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
					args[i] = pattern
				}
				db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
			}
		}

		ordered := false
		for _, field := range p.Ordering {
			dir := "ASC"
			name := field
			if strings.HasPrefix(field, "-") {
				dir = "DESC"
				name = strings.TrimPrefix(field, "-")
			}
			col, ok := s.OrderColumns[name]
			if !ok {
				continue
			}
			db = db.Order(col + " " + dir)
			ordered = true
		}
		if !ordered && s.DefaultOrder != "" {
			db = db.Order(s.DefaultOrder)
		}
		return db
	}
}

// SearchTerms splits a search value on whitespace and commas. Every term must
// match at least one search column.
func SearchTerms(search string) []string {
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
