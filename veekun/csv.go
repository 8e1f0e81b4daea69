package veekun

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// SyntaxError reports a row that could not be parsed as CSV.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// RecordLengthError reports a record too short for a requested field index.
type RecordLengthError struct {
	Line  int
	Index int
}

func (e *RecordLengthError) Error() string {
	return fmt.Sprintf("record on line %d too short for field index %d", e.Line, e.Index)
}

// FieldError reports a field whose value could not be interpreted.
type FieldError struct {
	Line  int
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("error on line %d field %d: %v", e.Line, e.Index, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// A Record is one data row of a veekun table.
//
// Fields are addressed by zero-based index. Accessors that parse a value
// return a FieldError carrying the source line so malformed tables can be
// reported precisely.
type Record struct {
	line   int
	fields []string
}

// Line reports the 1-based source line the record was read from.
func (r Record) Line() int { return r.line }

// Len reports the number of fields in the record.
func (r Record) Len() int { return len(r.fields) }

// Field returns the raw text of the field at index.
func (r Record) Field(index int) (string, error) {
	if index < 0 || index >= len(r.fields) {
		return "", &RecordLengthError{Line: r.line, Index: index}
	}
	return r.fields[index], nil
}

// Uint parses the field at index as an unsigned decimal.
func (r Record) Uint(index int) (uint64, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &FieldError{Line: r.line, Index: index, Err: err}
	}
	return v, nil
}

// Int parses the field at index as a signed decimal.
func (r Record) Int(index int) (int64, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &FieldError{Line: r.line, Index: index, Err: err}
	}
	return v, nil
}

// UintDefault parses the field at index as an unsigned decimal. A blank
// field yields def; anything else must parse.
func (r Record) UintDefault(index int, def uint64) (uint64, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return r.Uint(index)
}

// IntDefault parses the field at index as a signed decimal. A blank field
// yields def; anything else must parse.
func (r Record) IntDefault(index int, def int64) (int64, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return r.Int(index)
}

// OptionalUint parses the field at index as an unsigned decimal, reporting
// absence for a blank field.
func (r Record) OptionalUint(index int) (uint64, bool, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, false, err
	}
	if strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	v, err := r.Uint(index)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// OptionalInt parses the field at index as a signed decimal, reporting
// absence for a blank field.
func (r Record) OptionalInt(index int) (int64, bool, error) {
	s, err := r.Field(index)
	if err != nil {
		return 0, false, err
	}
	if strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	v, err := r.Int(index)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// OptionalString returns the text of the field at index, reporting absence
// for a blank field.
func (r Record) OptionalString(index int) (string, bool, error) {
	s, err := r.Field(index)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	return s, true, nil
}

// Errorf builds a FieldError for the field at index. Table loaders use it
// to reject values that parse but fall outside the domain they encode.
func (r Record) Errorf(index int, format string, args ...any) error {
	return &FieldError{Line: r.line, Index: index, Err: fmt.Errorf(format, args...)}
}

// A Reader iterates over the data rows of one veekun table. The header row
// is consumed on the first read.
type Reader struct {
	csv           *csv.Reader
	skippedHeader bool
}

// NewReader reads veekun records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{csv: csv.NewReader(r)}
}

// Read returns the next data record. It returns io.EOF at end of input.
func (r *Reader) Read() (Record, error) {
	if !r.skippedHeader {
		if _, err := r.csv.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return Record{}, io.EOF
			}
			return Record{}, wrapCSVError(err)
		}
		r.skippedHeader = true
	}
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, wrapCSVError(err)
	}
	line, _ := r.csv.FieldPos(0)
	return Record{line: line, fields: fields}, nil
}

func wrapCSVError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &SyntaxError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return err
}

// EachRecord opens the named table in fsys and calls fn for every data row.
// Errors from the reader and from fn are wrapped with the table name.
func EachRecord(fsys fs.FS, name string, fn func(Record) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer f.Close()

	r := NewReader(f)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := fn(rec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
}
