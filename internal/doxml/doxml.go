// Package doxml decodes the XML document set produced by Doxygen: the
// top-level index plus one document per compound. Only the record shapes the
// pipeline consumes are modeled; everything else in the schema is skipped by
// the decoder.
package doxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CompoundKind is the declared kind of a compound, in the index and in the
// compound document itself.
type CompoundKind string

const (
	KindFile     CompoundKind = "file"
	KindGroup    CompoundKind = "group"
	KindStruct   CompoundKind = "struct"
	KindClass    CompoundKind = "class"
	KindUnion    CompoundKind = "union"
	KindPage     CompoundKind = "page"
	KindDir      CompoundKind = "dir"
	KindCategory CompoundKind = "category"
	KindConcept  CompoundKind = "concept"
	KindExample  CompoundKind = "example"
)

// MemberKindFunction is the member kind that yields a node.
const MemberKindFunction = "function"

// Index is the decoded top-level index document.
type Index struct {
	XMLName   xml.Name        `xml:"doxygenindex"`
	Compounds []IndexCompound `xml:"compound"`
}

// IndexCompound is one compound listing in the index.
type IndexCompound struct {
	RefID string       `xml:"refid,attr"`
	Kind  CompoundKind `xml:"kind,attr"`
}

// Document is one decoded compound document. A document may expose more than
// one compound definition.
type Document struct {
	XMLName   xml.Name   `xml:"doxygen"`
	Compounds []Compound `xml:"compounddef"`
}

// Compound is one compound definition record.
type Compound struct {
	ID           string       `xml:"id,attr"`
	Kind         CompoundKind `xml:"kind,attr"`
	CompoundName string       `xml:"compoundname"`
	Title        string       `xml:"title"`
	Location     *Location    `xml:"location"`
	InnerClasses []Ref        `xml:"innerclass"`
	InnerGroups  []Ref        `xml:"innergroup"`
	Sections     []Section    `xml:"sectiondef"`
}

// Location carries up to three candidate file/line pairs for an entity: the
// implementation body, the primary location and the declaration.
type Location struct {
	File      string `xml:"file,attr"`
	Line      int    `xml:"line,attr"`
	BodyFile  string `xml:"bodyfile,attr"`
	BodyStart int    `xml:"bodystart,attr"`
	DeclFile  string `xml:"declfile,attr"`
	DeclLine  int    `xml:"declline,attr"`
}

// Ref is an inner-compound reference with display text.
type Ref struct {
	RefID string `xml:"refid,attr"`
	Name  string `xml:",chardata"`
}

// Section is one member section of a compound. It may hold plain member
// references, full member definitions, or both.
type Section struct {
	Members    []MemberRef `xml:"member"`
	MemberDefs []Member    `xml:"memberdef"`
}

// MemberRef is a member listed by reference only.
type MemberRef struct {
	RefID string `xml:"refid,attr"`
}

// Member is a full member definition embedded in a section.
type Member struct {
	ID       string      `xml:"id,attr"`
	Kind     string      `xml:"kind,attr"`
	Name     string      `xml:"name"`
	Type     *LinkedText `xml:"type"`
	Location *Location   `xml:"location"`
	Params   []ParamDecl `xml:"param"`
}

// ParamDecl is one declared parameter of a member definition.
type ParamDecl struct {
	Type     *LinkedText `xml:"type"`
	DeclName string      `xml:"declname"`
}

// DecodeIndex decodes an index document from r.
func DecodeIndex(r io.Reader) (*Index, error) {
	var idx Index
	if err := xml.NewDecoder(r).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return &idx, nil
}

// LoadIndex decodes the index document at path.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeIndex(f)
}

// DecodeDocument decodes a compound document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding compound document: %w", err)
	}
	return &doc, nil
}

// LoadCompound decodes the document for one compound id from dir, where the
// document is named <id>.xml.
func LoadCompound(dir, id string) (*Document, error) {
	f, err := os.Open(filepath.Join(dir, id+".xml"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeDocument(f)
}
