// Package validation implements the per-field rule engine shared by every
// catalog resource. One table of rules per entity serves both full
// (create/replace) and partial (patch) modes: in full mode an absent
// required field is itself a violation, in partial mode absent fields are
// skipped and present fields are checked with the same constraints.
//
// Rules are evaluated in declared order and the first violated constraint
// determines the single reported reason; failures are never aggregated.
package validation

import (
	domainerrors "precario/internal/domain/errors"
)

// Rule is one field constraint. Present reports whether the field was
// supplied at all; Valid checks the constraint and is only consulted when
// the field is present.
type Rule struct {
	Reason   string
	Optional bool // Absence is acceptable even in full mode.
	Present  func() bool
	Valid    func() bool
}

// Run walks rules in order and returns the first violation as an invalid
// data error carrying the rule's reason code, or nil when every rule holds.
func Run(partial bool, rules []Rule) error {
	for _, r := range rules {
		if !r.Present() {
			if partial || r.Optional {
				continue
			}

			return domainerrors.NewDadosInvalidos(r.Reason)
		}
		if !r.Valid() {
			return domainerrors.NewDadosInvalidos(r.Reason)
		}
	}

	return nil
}

// NoID rejects a client-supplied id on create/replace input. It runs before
// any field rule regardless of mode.
func NoID(id *int64) error {
	if id != nil {
		return domainerrors.ErrIDFornecido
	}

	return nil
}
