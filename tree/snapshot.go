package tree

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// decoding keeps numbers as json.Number so lineCount and timestamp print the
// way the producer wrote them
var json = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

const (
	PlaceholderName = "Not connected"
	UnknownName     = "Unknown"
)

var placeholder = []byte(`{"name":"` + PlaceholderName + `","timestamp":0,"containers":[]}`)

// Snapshot is one complete tree document as pushed by the plugin. Any JSON
// value is accepted; nothing about its shape is assumed. A Snapshot is never
// modified after Parse returns it.
type Snapshot struct {
	raw []byte
	doc any
}

// Parse validates data as a single JSON value and returns it as a Snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var buf bytes.Buffer
	if err := stdjson.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	return &Snapshot{raw: buf.Bytes(), doc: doc}, nil
}

// Placeholder is the snapshot served before the first sync.
func Placeholder() *Snapshot {
	s, err := Parse(placeholder)
	if err != nil {
		panic(err)
	}
	return s
}

// Bytes returns the compact JSON encoding of the snapshot. Callers must not
// modify the returned slice.
func (s *Snapshot) Bytes() []byte {
	return s.raw
}

// Doc returns the decoded document.
func (s *Snapshot) Doc() any {
	return s.doc
}

// Name returns the snapshot's name when it is set to anything truthy. Non-string
// names print the way they were sent, so a name of 5 reads "5".
func (s *Snapshot) Name() (string, bool) {
	name := field(s.doc, "name")
	if !truthy(name) {
		return "", false
	}
	return scalarText(name), true
}

// Containers returns the top-level nodes, or nil when containers is absent or
// not an array.
func (s *Snapshot) Containers() []any {
	containers, _ := field(s.doc, "containers").([]any)
	return containers
}

func field(v any, key string) any {
	f, _ := lookup(v, key)
	return f
}

// lookup tells an absent key apart from one set to null.
func lookup(v any, key string) (any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	f, ok := obj[key]
	return f, ok
}
