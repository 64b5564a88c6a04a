package specification

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SearchILike matches the query case-insensitively against any of the
// given columns.
type SearchILike struct {
	Query   string
	Columns []string
}

func (s SearchILike) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" || len(s.Columns) == 0 {
		return db
	}
	pattern := "%" + s.Query + "%"
	clauses := make([]string, len(s.Columns))
	args := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		clauses[i] = fmt.Sprintf("%s ILIKE ?", col)
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}
