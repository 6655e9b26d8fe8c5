package seen

// Record is the ordered list of identifiers already shown to the user.
// It is not safe for concurrent use.
type Record struct {
	ids   []string
	index map[string]struct{}
}

func NewRecord(ids []string) *Record {
	r := &Record{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		r.Append(id)
	}
	return r
}

// Contains reports whether id was recorded. Matching is exact and
// case-sensitive.
func (r *Record) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Append adds id to the end of the record, even if it is already present.
func (r *Record) Append(id string) {
	r.ids = append(r.ids, id)
	r.index[id] = struct{}{}
}

// IDs returns a copy of the identifiers in insertion order.
func (r *Record) IDs() []string {
	return append([]string(nil), r.ids...)
}

func (r *Record) Len() int {
	return len(r.ids)
}
