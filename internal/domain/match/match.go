// Package match implements the fuzzy by-example criteria used both for
// list filtering and for duplicate detection: per-field predicates with
// explicit equality, case-insensitive equality and case-insensitive
// substring-containment operators. Criteria are evaluated either in memory
// or translated to SQL by the persistence layer.
package match

import (
	"fmt"
	"strings"
)

// Op identifies how a single field is compared.
type Op int

const (
	// OpEq is exact equality, used for numeric keys.
	OpEq Op = iota
	// OpFoldEq is case-insensitive string equality.
	OpFoldEq
	// OpFoldContains is case-insensitive substring containment.
	OpFoldContains
)

// Cond is one field predicate.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Criteria is an ordered conjunction of field predicates. The zero value
// matches everything.
type Criteria struct {
	conds []Cond
}

// New returns an empty criteria set.
func New() *Criteria {
	return &Criteria{}
}

// Eq adds an exact-equality predicate.
func (c *Criteria) Eq(field string, value any) *Criteria {
	c.conds = append(c.conds, Cond{Field: field, Op: OpEq, Value: value})

	return c
}

// FoldEq adds a case-insensitive equality predicate.
func (c *Criteria) FoldEq(field, value string) *Criteria {
	c.conds = append(c.conds, Cond{Field: field, Op: OpFoldEq, Value: value})

	return c
}

// FoldContains adds a case-insensitive substring predicate.
func (c *Criteria) FoldContains(field, value string) *Criteria {
	c.conds = append(c.conds, Cond{Field: field, Op: OpFoldContains, Value: value})

	return c
}

// Conds exposes the predicates for translation by the persistence layer.
func (c *Criteria) Conds() []Cond {
	if c == nil {
		return nil
	}

	return c.conds
}

// Empty reports whether no predicate was added.
func (c *Criteria) Empty() bool {
	return c == nil || len(c.conds) == 0
}

// Key renders a stable textual form of the criteria, usable as a cache key.
func (c *Criteria) Key() string {
	if c.Empty() {
		return "*"
	}

	var b strings.Builder
	for i, cond := range c.conds {
		if i > 0 {
			b.WriteByte('&')
		}
		fmt.Fprintf(&b, "%s:%d:%v", cond.Field, cond.Op, cond.Value)
	}

	return b.String()
}

// Matches evaluates the criteria in memory against a record expressed as a
// field-name to value mapping. Every predicate must hold.
func (c *Criteria) Matches(record map[string]any) bool {
	for _, cond := range c.Conds() {
		got, ok := record[cond.Field]
		if !ok {
			return false
		}
		if !condHolds(cond, got) {
			return false
		}
	}

	return true
}

func condHolds(cond Cond, got any) bool {
	switch cond.Op {
	case OpFoldEq:
		return strings.EqualFold(asString(got), asString(cond.Value))
	case OpFoldContains:
		return strings.Contains(
			strings.ToLower(asString(got)),
			strings.ToLower(asString(cond.Value)),
		)
	default:
		return got == cond.Value
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
