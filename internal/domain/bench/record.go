// Where: internal/domain/bench/record.go
// What: Ordered timing record for a benchmark run.
// Why: Preserve execution order for reporting without relying on map iteration.
package bench

// Entry is a single step duration in seconds.
type Entry struct {
	Label   string
	Seconds float64
}

// Record maps step labels to durations in insertion order.
type Record struct {
	entries []Entry
	index   map[string]int
}

// Add appends a step duration. Re-adding a label overwrites it in place.
func (r *Record) Add(label string, seconds float64) {
	if r.index == nil {
		r.index = map[string]int{}
	}
	if i, ok := r.index[label]; ok {
		r.entries[i].Seconds = seconds
		return
	}
	r.index[label] = len(r.entries)
	r.entries = append(r.entries, Entry{Label: label, Seconds: seconds})
}

// Entries returns a copy of the recorded entries in execution order.
func (r *Record) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

func (r *Record) Len() int {
	return len(r.entries)
}

// Total sums every recorded duration.
func (r *Record) Total() float64 {
	total := 0.0
	for _, e := range r.entries {
		total += e.Seconds
	}
	return total
}
