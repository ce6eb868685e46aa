package tree

import (
	stdjson "encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	banner = "====================================="

	connectorMid  = "├── "
	connectorLast = "└── "
	indentMid     = "│   "
	indentLast    = "    "

	updatedLayout = "1/2/2006, 3:04:05 PM"
	invalidDate   = "Invalid Date"

	// largest instant a millisecond clock can express, in either direction
	maxMillis = 8.64e15
)

// Text renders the snapshot as a box-drawn plain text report in local time.
func Text(s *Snapshot) string {
	return TextIn(s, time.Local)
}

// TextIn renders the snapshot with the header timestamp in loc.
func TextIn(s *Snapshot, loc *time.Location) string {
	var sb strings.Builder

	name, ok := s.Name()
	if !ok {
		name = UnknownName
	}

	updated := invalidDate
	if ts, ok := lookup(s.doc, "timestamp"); ok {
		updated = formatUpdated(ts, loc)
	}

	sb.WriteString(banner + "\n")
	sb.WriteString("  PROJECT DIRECTORY TREE\n")
	sb.WriteString("  Game: " + name + "\n")
	sb.WriteString("  Updated: " + updated + "\n")
	sb.WriteString(banner + "\n\n")

	containers := s.Containers()
	for i, c := range containers {
		writeNode(&sb, c, "", i == len(containers)-1)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, node any, prefix string, last bool) {
	connector, indent := connectorMid, indentMid
	if last {
		connector, indent = connectorLast, indentLast
	}

	sb.WriteString(prefix + connector + scalarText(field(node, "name")))
	sb.WriteString(" [" + scalarText(field(node, "className")) + "]")

	// childCount is whatever the plugin reported; it is not checked against children
	if v := field(node, "lineCount"); truthy(v) {
		sb.WriteString(" (" + scalarText(v) + " lines)")
	}
	if v := field(node, "childCount"); truthy(v) {
		sb.WriteString(" (" + scalarText(v) + " children)")
	}
	sb.WriteString("\n")

	children, _ := field(node, "children").([]any)
	for i, child := range children {
		writeNode(sb, child, prefix+indent, i == len(children)-1)
	}
}

func formatUpdated(v any, loc *time.Location) string {
	seconds, ok := number(v)
	if !ok {
		return invalidDate
	}

	millis := seconds * 1000
	if math.IsNaN(millis) || math.Abs(millis) > maxMillis {
		return invalidDate
	}

	return time.UnixMilli(int64(millis)).In(loc).Format(updatedLayout)
}

// number coerces a present value to seconds: null and blank strings count as
// zero, booleans as zero or one.
func number(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case stdjson.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case stdjson.Number, float64:
		f, ok := number(t)
		return ok && f != 0
	}
	return true
}

// scalarText prints strings bare and everything else as JSON. Missing and
// null values print as nothing.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case stdjson.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
