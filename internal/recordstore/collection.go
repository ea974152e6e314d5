package recordstore

// Collection is a sparse, id-indexed list of records. Slots for ids without a
// record are nil.
type Collection struct {
	records []Record
}

// NewCollection builds a collection from a sparse slice, taking ownership of it.
func NewCollection(records []Record) *Collection {
	return &Collection{records: records}
}

// Get returns the record stored under id.
func (c *Collection) Get(id int64) (Record, bool) {
	if c == nil || id < 0 || id >= int64(len(c.records)) {
		return nil, false
	}
	r := c.records[id]
	return r, r != nil
}

// Len is one past the highest id in the collection.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Count is the number of ids that hold a record.
func (c *Collection) Count() int {
	n := 0
	for _, r := range c.Slots() {
		if r != nil {
			n++
		}
	}
	return n
}

// Slots exposes the sparse backing slice, holes included. Callers must not
// modify it.
func (c *Collection) Slots() []Record {
	if c == nil {
		return nil
	}
	return c.records
}

// Present returns the records in id order with holes removed.
func (c *Collection) Present() []Record {
	out := make([]Record, 0, len(c.Slots()))
	for _, r := range c.Slots() {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// First returns the record with the lowest id.
func (c *Collection) First() (Record, bool) {
	for _, r := range c.Slots() {
		if r != nil {
			return r, true
		}
	}
	return nil, false
}

// set stores r under id, growing the slice as needed.
func (c *Collection) set(id int, r Record) {
	if id >= len(c.records) {
		grown := make([]Record, id+1)
		copy(grown, c.records)
		c.records = grown
	}
	c.records[id] = r
}
