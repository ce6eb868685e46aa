package tree_test

import (
	"strings"
	"testing"
	"time"

	"github.com/livedirtree/treerelay/tree"
	"github.com/stretchr/testify/require"
)

const header = "=====================================\n" +
	"  PROJECT DIRECTORY TREE\n" +
	"  Game: Game1\n" +
	"  Updated: 1/1/1970, 12:16:40 AM\n" +
	"=====================================\n\n"

func render(t *testing.T, doc string) string {
	snap, err := tree.Parse([]byte(doc))
	require.NoError(t, err)
	return tree.TextIn(snap, time.UTC)
}

func TestTextEmptyContainers(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"name":"Game1","timestamp":1000,"containers":[]}`)
	r.Equal(header, out)

	out = render(t, `{"name":"Game1","timestamp":1000}`)
	r.Equal(header, out)
}

func TestTextNested(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"name":"Game1","timestamp":1000,"containers":[{"name":"Workspace","className":"Folder","children":[{"name":"Part1","className":"Part"}]}]}`)

	r.Equal(header+
		"└── Workspace [Folder]\n"+
		"    └── Part1 [Part]\n"+
		"\n", out)
}

func TestTextConnectors(t *testing.T) {
	r := require.New(t)

	doc := `{"name":"Game1","timestamp":1000,"containers":[
		{"name":"A","className":"Folder","children":[
			{"name":"A1","className":"Script","lineCount":12,"children":[{"name":"A1a","className":"Part"}]},
			{"name":"A2","className":"Model","childCount":3}
		]},
		{"name":"B","className":"Folder","children":[
			{"name":"B1","className":"Part"},
			{"name":"B1","className":"Part"}
		]}
	]}`

	expected := header +
		"├── A [Folder]\n" +
		"│   ├── A1 [Script] (12 lines)\n" +
		"│   │   └── A1a [Part]\n" +
		"│   └── A2 [Model] (3 children)\n" +
		"\n" +
		"└── B [Folder]\n" +
		"    ├── B1 [Part]\n" +
		"    └── B1 [Part]\n" +
		"\n"

	r.Equal(expected, render(t, doc))
}

func TestTextAnnotations(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"name":"Game1","timestamp":1000,"containers":[
		{"name":"Zero","className":"Script","lineCount":0,"childCount":0},
		{"name":"Both","className":"Script","lineCount":40,"childCount":7,"children":[]}
	]}`)

	r.Contains(out, "├── Zero [Script]\n")
	r.Contains(out, "└── Both [Script] (40 lines) (7 children)\n")
}

func TestTextChildCountNotReconciled(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"name":"Game1","timestamp":1000,"containers":[
		{"name":"Lies","className":"Folder","childCount":99,"children":[{"name":"Only","className":"Part"}]}
	]}`)

	r.Contains(out, "└── Lies [Folder] (99 children)\n    └── Only [Part]\n")
}

func TestTextMissingFields(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"containers":[{"className":"Part"},{"name":"NoClass"}]}`)

	r.True(strings.HasPrefix(out, banner()+"\n  PROJECT DIRECTORY TREE\n  Game: Unknown\n  Updated: Invalid Date\n"))
	r.Contains(out, "├──  [Part]\n")
	r.Contains(out, "└── NoClass []\n")
}

func TestTextLooseHeaderValues(t *testing.T) {
	r := require.New(t)

	for doc, updated := range map[string]string{
		`{"timestamp":null}`:    "1/1/1970, 12:00:00 AM",
		`{"timestamp":""}`:      "1/1/1970, 12:00:00 AM",
		`{"timestamp":false}`:   "1/1/1970, 12:00:00 AM",
		`{"timestamp":true}`:    "1/1/1970, 12:00:01 AM",
		`{"timestamp":" 60 "}`:  "1/1/1970, 12:01:00 AM",
		`{"timestamp":"later"}`: "Invalid Date",
		`{"timestamp":{}}`:      "Invalid Date",
	} {
		r.Contains(render(t, doc), "  Updated: "+updated+"\n", doc)
	}

	for doc, name := range map[string]string{
		`{"name":5}`:       "5",
		`{"name":true}`:    "true",
		`{"name":0}`:       "Unknown",
		`{"name":false}`:   "Unknown",
		`{"name":null}`:    "Unknown",
		`{"name":["a"]}`:   `["a"]`,
		`{"name":"Game1"}`: "Game1",
	} {
		r.Contains(render(t, doc), "  Game: "+name+"\n", doc)
	}
}

func TestTextNonObjectDocument(t *testing.T) {
	r := require.New(t)

	out := render(t, `[1,2,3]`)
	r.Contains(out, "Game: Unknown")
	r.True(strings.HasSuffix(out, banner()+"\n\n"))
}

func TestTextLastSiblingHasNoBar(t *testing.T) {
	r := require.New(t)

	out := render(t, `{"name":"Game1","timestamp":1000,"containers":[
		{"name":"Top","className":"Folder","children":[
			{"name":"Deep","className":"Folder","children":[{"name":"Leaf","className":"Part"}]}
		]}
	]}`)

	for _, line := range strings.Split(out, "\n") {
		r.NotContains(line, "│")
	}
	r.Contains(out, "        └── Leaf [Part]\n")
}

func banner() string {
	return "====================================="
}
