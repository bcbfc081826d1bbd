package returns

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Record delimiters.
const (
	FieldSeparator    = ","
	KeyValueSeparator = ":"
)

// Record holds the raw fields of one input line, by field name.
type Record map[string]string

// Field returns the raw value of a field, or a *MissingFieldError.
func (r Record) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", &MissingFieldError{Field: name, Record: r}
	}
	return v, nil
}

// String formats the record back into a line, fields sorted by name.
func (r Record) String() string {
	var b strings.Builder
	for i, k := range slices.Sorted(maps.Keys(r)) {
		if i > 0 {
			b.WriteString(FieldSeparator)
		}
		b.WriteString(k)
		b.WriteString(KeyValueSeparator)
		b.WriteString(r[k])
	}
	return b.String()
}

// parseLine parses a single line; n is the line number used in errors.
//
// A key repeated on the same line keeps its last value.
func parseLine(n int, line string) (Record, error) {
	rec := make(Record)
	for _, token := range strings.Split(line, FieldSeparator) {
		key, value, ok := strings.Cut(token, KeyValueSeparator)
		if !ok || strings.Contains(value, KeyValueSeparator) {
			return nil, &MalformedRecordError{Line: n, Token: token}
		}
		rec[key] = value
	}
	return rec, nil
}

// ParseRecord parses a single line into a Record.
func ParseRecord(line string) (Record, error) {
	return parseLine(1, strings.TrimRight(line, "\r\n"))
}

// blank reports whether a line holds nothing but line breaks.
func blank(line string) bool { return strings.TrimRight(line, "\r\n") == "" }

// ParseRecords converts lines into Records, in the same order.
//
// Each line is a FieldSeparator separated list of key:value tokens, like
//
//	date:2016-02-10,ticker:CSCO,adj_close:16.8671,shares:5076080000
//
// Blank lines are skipped. The first malformed token fails the whole batch.
func ParseRecords(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		if blank(line) {
			continue
		}
		rec, err := parseLine(i+1, strings.TrimRight(line, "\r\n"))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// MaxLineSize is the longest line DecodeRecords accepts.
const MaxLineSize = 16 << 20

// DecodeRecords reads all lines from r and parses them like ParseRecords.
// Lines longer than MaxLineSize fail with bufio.ErrTooLong.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, MaxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if blank(line) {
			continue
		}
		rec, err := parseLine(n, strings.TrimRight(line, "\r\n"))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}
