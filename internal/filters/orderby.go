package filters

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// OrderField is one resolved orderBy entry. A field prefixed with "-" in the
// criterion value sorts descending.
type OrderField struct {
	Column string
	Desc   bool
}

func parseOrderBy(value string, allowed map[string]string) ([]OrderField, error) {
	var out []OrderField
	for _, raw := range strings.Split(value, ",") {
		field := strings.TrimSpace(raw)
		if field == "" {
			continue
		}
		desc := false
		if strings.HasPrefix(field, "-") {
			desc = true
			field = field[1:]
		}
		column, ok := allowed[field]
		if !ok {
			return nil, badValue("orderBy", fmt.Sprintf("unknown field %q", field))
		}
		out = append(out, OrderField{Column: column, Desc: desc})
	}
	return out, nil
}

// applyOrder applies the resolved ordering, falling back to id so results are
// deterministic even without an explicit orderBy.
func applyOrder(q *gorm.DB, fields []OrderField, idColumn string) *gorm.DB {
	for _, f := range fields {
		dir := " ASC"
		if f.Desc {
			dir = " DESC"
		}
		q = q.Order(f.Column + dir)
	}
	return q.Order(idColumn + " ASC")
}
