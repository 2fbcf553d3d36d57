package parser

import (
	"strings"

	"github.com/zheng/doxgraph/internal/doxml"
	"github.com/zheng/doxgraph/internal/graph"
)

// HeaderFileExtension is the suffix a location's file name must carry to be
// accepted as a resolved location. Documentation entities should point into
// headers, not implementation files.
const HeaderFileExtension = ".h"

// parseLocation resolves the best header location out of the candidates a
// location record exposes, in priority order body, primary, declaration. A
// candidate only qualifies if its file name ends with the header extension.
// With no record or no qualifying candidate the node keeps an empty location.
func parseLocation(b *graph.BaseNode, loc *doxml.Location) {
	switch {
	case loc == nil:
		b.File = ""
		b.Line = 0
	case strings.HasSuffix(loc.BodyFile, HeaderFileExtension):
		b.File = loc.BodyFile
		b.Line = loc.BodyStart
	case strings.HasSuffix(loc.File, HeaderFileExtension):
		b.File = loc.File
		b.Line = loc.Line
	case strings.HasSuffix(loc.DeclFile, HeaderFileExtension):
		b.File = loc.DeclFile
		b.Line = loc.DeclLine
	default:
		b.File = ""
		b.Line = 0
	}
}

// parseType flattens a mixed text/reference type record into one linear
// string, concatenating literal text and reference display values in
// document order. An absent record flattens to "void".
func parseType(t *doxml.LinkedText) string {
	if t == nil {
		return "void"
	}
	var sb strings.Builder
	for _, frag := range t.Fragments {
		sb.WriteString(frag.Text)
	}
	return sb.String()
}

// parseDescription extracts the free-text description of a record.
//
// TODO: render briefdescription/detaileddescription markup to plain text.
func parseDescription() string {
	return ""
}
