package reduction

// Log is an ordered, append-only sequence of Records. A model is
// "reduced" iff its Log is non-empty.
type Log struct {
	records []Record
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Append adds r to the end of the log.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of records currently in the log.
func (l *Log) Len() int {
	return len(l.records)
}

// Clear empties the log, as happens after a successful Reproduce.
func (l *Log) Clear() {
	l.records = nil
}

// Records returns the log's records in append order. The returned slice is
// a fresh copy; mutating it does not affect the log.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Reversed returns the log's records in reverse (most recent collapse
// first), the order Reproduce must replay them in.
func (l *Log) Reversed() []Record {
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

// MarshalJSON encodes the log as a plain JSON array of records, matching
// the REDUCTION_DATA payload objcodec embeds in OBJ comments.
func (l *Log) MarshalJSON() ([]byte, error) {
	return marshalRecords(l.records)
}

// UnmarshalJSON decodes a plain JSON array of records into the log,
// replacing any existing content.
func (l *Log) UnmarshalJSON(data []byte) error {
	records, err := unmarshalRecords(data)
	if err != nil {
		return err
	}
	l.records = records
	return nil
}
