// Package patch provides the merge primitives for PATCH semantics: a nil
// input field leaves the stored value unchanged, a supplied value replaces
// it, and on clearable fields an explicitly supplied empty string clears
// the stored value to "no value".
package patch

// Field replaces *dst with *src when src was supplied.
func Field[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Clearable merges an optional string field. Nil keeps the current value,
// an empty string clears it, anything else sets it.
func Clearable(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil

		return
	}
	v := *src
	*dst = &v
}
