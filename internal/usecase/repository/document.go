package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/project/studentlibrary/internal/entity"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

const (
	unknownText = "Unknown"
	indent      = "    "
)

var errNotObject = errors.New("document is not a JSON object")

// field is one member of a JSON object. Documents are read and written as
// ordered member lists so that catalog and registration order survive a
// restart.
type field struct {
	key   string
	value json.RawMessage
}

type bookDocument struct {
	Title  string `json:"Title"`
	Author string `json:"Author"`
	Genre  string `json:"Genre"`
	Year   int    `json:"Year"`
	Copies int    `json:"Copies"`
}

type loanDocument struct {
	ID       string `json:"ID"`
	Title    string `json:"Title"`
	Borrowed string `json:"Borrowed"`
	Due      string `json:"Due"`
}

// decodeWarning describes a record the decoder repaired or dropped.
type decodeWarning struct {
	key    string
	reason string
}

func readObject(data []byte) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var fields []field
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, field{key: key, value: value})
	}

	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after document")
	}

	return dedupe(fields), nil
}

// dedupe keeps the first position of a repeated key and its last value.
func dedupe(fields []field) []field {
	index := make(map[string]int, len(fields))
	out := make([]field, 0, len(fields))
	for _, f := range fields {
		if i, ok := index[f.key]; ok {
			out[i].value = f.value
			continue
		}
		index[f.key] = len(out)
		out = append(out, f)
	}
	return out
}

func writeObject(fields []field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeCatalog(books []entity.Book) ([]byte, error) {
	fields := make([]field, 0, len(books))
	for _, b := range books {
		value, err := json.Marshal(bookDocument{
			Title:  b.Title,
			Author: b.Author,
			Genre:  b.Genre,
			Year:   b.Year,
			Copies: b.Copies,
		})
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{key: strconv.Itoa(b.ID), value: value})
	}
	return writeObject(fields)
}

// decodeCatalog reads a catalog document leniently: field names in any case,
// missing fields defaulted, numbers given as strings accepted and records
// with a non-integer key renumbered after the largest integer key.
func decodeCatalog(data []byte) ([]entity.Book, []decodeWarning, error) {
	fields, err := readObject(data)
	if err != nil {
		return nil, nil, err
	}

	var (
		books    []entity.Book
		warnings []decodeWarning
		renumber []int
	)
	for _, f := range fields {
		var obj map[string]any
		if err = json.Unmarshal(f.value, &obj); err != nil || obj == nil {
			warnings = append(warnings, decodeWarning{key: f.key, reason: "record is not an object, skipped"})
			continue
		}

		book, bookWarnings := decodeBook(f.key, obj)
		warnings = append(warnings, bookWarnings...)

		id, convErr := strconv.Atoi(strings.TrimSpace(f.key))
		if convErr != nil || id <= 0 {
			renumber = append(renumber, len(books))
			warnings = append(warnings, decodeWarning{key: f.key, reason: "key is not a positive integer, new id assigned"})
		} else {
			book.ID = id
		}
		books = append(books, book)
	}

	next := 1
	if len(books) > 0 {
		next = lo.MaxBy(books, func(a, b entity.Book) bool { return a.ID > b.ID }).ID + 1
	}
	for _, i := range renumber {
		books[i].ID = next
		next++
	}

	return dedupeIDs(books), warnings, nil
}

// dedupeIDs keeps the first position of a repeated id and its last record,
// which is how "1" and "01" collapse.
func dedupeIDs(books []entity.Book) []entity.Book {
	index := make(map[int]int, len(books))
	out := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if i, ok := index[b.ID]; ok {
			out[i] = b
			continue
		}
		index[b.ID] = len(out)
		out = append(out, b)
	}
	return out
}

func decodeBook(key string, obj map[string]any) (entity.Book, []decodeWarning) {
	var warnings []decodeWarning
	warn := func(reason string) {
		warnings = append(warnings, decodeWarning{key: key, reason: reason})
	}

	number := func(name string) int {
		raw, ok := lookup(obj, name)
		if !ok || raw == nil {
			return 0
		}
		v, err := cast.ToIntE(raw)
		if err != nil {
			if f, fErr := cast.ToFloat64E(raw); fErr == nil {
				return int(f)
			}
			warn(fmt.Sprintf("%s %v is not a number, 0 used", name, raw))
			return 0
		}
		return v
	}

	book := entity.Book{
		Title:  text(obj, "Title", unknownText),
		Author: text(obj, "Author", unknownText),
		Genre:  text(obj, "Genre", ""),
		Year:   number("Year"),
		Copies: number("Copies"),
	}
	if book.Copies < 0 {
		warn(fmt.Sprintf("negative copies %d, 0 used", book.Copies))
		book.Copies = 0
	}

	return book, warnings
}

// lookup finds name in obj, preferring the exact spelling over any other
// case.
func lookup(obj map[string]any, name string) (any, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func text(obj map[string]any, name, fallback string) string {
	raw, ok := lookup(obj, name)
	if !ok || raw == nil {
		return fallback
	}
	s, err := cast.ToStringE(raw)
	if err != nil || s == "" {
		return fallback
	}
	return s
}

func encodeRoster(members []entity.Member) ([]byte, error) {
	fields := make([]field, 0, len(members))
	for _, m := range members {
		value, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{key: m.ID, value: value})
	}
	return writeObject(fields)
}

func decodeRoster(data []byte) ([]entity.Member, []decodeWarning, error) {
	fields, err := readObject(data)
	if err != nil {
		return nil, nil, err
	}

	members := make([]entity.Member, 0, len(fields))
	var warnings []decodeWarning
	for _, f := range fields {
		var raw any
		if err = json.Unmarshal(f.value, &raw); err != nil {
			warnings = append(warnings, decodeWarning{key: f.key, reason: "unreadable name, skipped"})
			continue
		}
		name, castErr := cast.ToStringE(raw)
		if castErr != nil {
			warnings = append(warnings, decodeWarning{key: f.key, reason: "name is not text, skipped"})
			continue
		}
		members = append(members, entity.Member{ID: f.key, Name: name})
	}

	return members, warnings, nil
}

func encodeLedger(entries []memberLoans) ([]byte, error) {
	fields := make([]field, 0, len(entries))
	for _, e := range entries {
		docs := lo.Map(e.Loans, func(l entity.Loan, _ int) loanDocument {
			return loanDocument(l)
		})
		value, err := json.Marshal(docs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{key: e.MemberID, value: value})
	}
	return writeObject(fields)
}

func decodeLedger(data []byte) ([]memberLoans, []decodeWarning, error) {
	fields, err := readObject(data)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]memberLoans, 0, len(fields))
	var warnings []decodeWarning
	for _, f := range fields {
		var docs []loanDocument
		if err = json.Unmarshal(f.value, &docs); err != nil {
			warnings = append(warnings, decodeWarning{key: f.key, reason: "loans are not a list of records, skipped"})
			continue
		}
		loans := lo.Map(docs, func(d loanDocument, _ int) entity.Loan {
			if d.ID == "" {
				d.ID = uuid.NewString()
			}
			return entity.Loan(d)
		})
		entries = append(entries, memberLoans{MemberID: f.key, Loans: loans})
	}

	return entries, warnings, nil
}
