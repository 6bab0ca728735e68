package sidecar

// Record is one parsed sidecar document: a flat mapping from parameter name
// to its raw decoded value. Records are supplied externally and must be
// treated as read-only during validation.
type Record map[string]any

// Get returns the classified value for field. A missing field yields the
// absent value, which never matches any expectation.
func (r Record) Get(field string) Value {
	raw, ok := r[field]
	if !ok {
		return Absent()
	}
	return ValueOf(raw)
}

// Has reports whether field is present in the record.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Fields returns the number of fields in the record.
func (r Record) Fields() int {
	return len(r)
}
