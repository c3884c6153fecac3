package postgres

import (
	"strings"

	"precario/internal/domain/match"
	"precario/internal/errors"

	"gorm.io/gorm"
)

// applyCriteria translates the fuzzy by-example criteria into SQL
// predicates. Column names pass through a per-repository allowlist so a
// filter can never reach an unknown column.
func applyCriteria(db *gorm.DB, crit *match.Criteria, columns map[string]string) (*gorm.DB, error) {
	for _, cond := range crit.Conds() {
		column, ok := columns[cond.Field]
		if !ok {
			return nil, errors.Errorf("unknown filter field: %s", cond.Field)
		}

		switch cond.Op {
		case match.OpFoldEq:
			db = db.Where("LOWER("+column+") = LOWER(?)", cond.Value)
		case match.OpFoldContains:
			db = db.Where("LOWER("+column+") LIKE '%' || LOWER(?) || '%' ESCAPE '\\'", escapeLike(cond.Value))
		default:
			db = db.Where(column+" = ?", cond.Value)
		}
	}

	return db, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes the LIKE metacharacters in a containment value so
// the SQL predicate stays literal, agreeing with the in-memory evaluation.
func escapeLike(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}

	return likeEscaper.Replace(s)
}
