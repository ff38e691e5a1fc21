package appointment

import "github.com/cockroachdb/errors"

// ErrIndexOutOfRange is returned by Remove for an index outside the queue.
var ErrIndexOutOfRange = errors.New("appointment index out of range")

// Queue is the ordered list of appointments awaiting confirmation. Insertion
// order is display order and no two entries share a Key.
type Queue struct {
	items []Record
}

// NewQueue builds a queue from records, dropping later duplicates.
func NewQueue(records ...Record) Queue {
	var q Queue
	for _, r := range records {
		q.Add(r)
	}
	return q
}

// Add appends r unless an appointment with the same key is already queued.
// It reports whether the record was added; a duplicate is not an error.
func (q *Queue) Add(r Record) bool {
	if q.Contains(r.Key()) {
		return false
	}
	q.items = append(q.items, r)
	return true
}

// Remove deletes the record at index, shifting the rest down.
func (q *Queue) Remove(index int) (Record, error) {
	if index < 0 || index >= len(q.items) {
		return Record{}, errors.Wrapf(ErrIndexOutOfRange, "remove %d from queue of %d", index, len(q.items))
	}
	removed := q.items[index]
	next := make([]Record, 0, len(q.items)-1)
	next = append(next, q.items[:index]...)
	next = append(next, q.items[index+1:]...)
	q.items = next
	return removed, nil
}

// Clear removes every queued record.
func (q *Queue) Clear() {
	q.items = nil
}

// Contains reports whether key is queued.
func (q *Queue) Contains(key Key) bool {
	for _, r := range q.items {
		if r.Key() == key {
			return true
		}
	}
	return false
}

// Len returns the number of queued records.
func (q *Queue) Len() int {
	return len(q.items)
}

// At returns the record at index.
func (q *Queue) At(index int) (Record, bool) {
	if index < 0 || index >= len(q.items) {
		return Record{}, false
	}
	return q.items[index], true
}

// Items returns a copy of the queued records in order.
func (q *Queue) Items() []Record {
	if len(q.items) == 0 {
		return nil
	}
	dup := make([]Record, len(q.items))
	copy(dup, q.items)
	return dup
}

// Clone returns an independent copy of the queue.
func (q *Queue) Clone() Queue {
	return Queue{items: q.Items()}
}
