// Package parser converts decoded compound documents into graph nodes.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/zheng/doxgraph/internal/doxml"
	"github.com/zheng/doxgraph/internal/graph"
)

// Parser turns one compound document at a time into nodes. It holds no
// mutable state, so one Parser is safely shared across workers.
type Parser struct {
	dir string
	log *slog.Logger
}

// New creates a parser reading compound documents from dir. Warnings go to
// log; they never touch the output document.
func New(dir string, log *slog.Logger) *Parser {
	return &Parser{dir: dir, log: log}
}

// ParseCompound decodes the document for one compound id and returns the
// nodes it yields. A document may expose several compound definitions; each
// contributes its nodes independently. Definitions of an unexpected kind are
// skipped with a warning.
func (p *Parser) ParseCompound(id string) ([]graph.Node, error) {
	doc, err := doxml.LoadCompound(p.dir, id)
	if err != nil {
		return nil, fmt.Errorf("compound %s: %w", id, err)
	}

	var result []graph.Node
	for i := range doc.Compounds {
		compound := &doc.Compounds[i]
		switch compound.Kind {
		case doxml.KindFile:
			result = append(result, p.parseFile(compound)...)
		case doxml.KindGroup:
			result = append(result, p.parseGroup(compound)...)
		case doxml.KindStruct, doxml.KindClass, doxml.KindUnion:
			result = append(result, p.parseStruct(compound, compound.Kind == doxml.KindUnion))
		default:
			p.log.Warn("unexpected compound kind", "kind", compound.Kind, "id", compound.ID)
		}
	}
	return result, nil
}

func (p *Parser) parseFile(compound *doxml.Compound) []graph.Node {
	return p.parseFileOrGroup(graph.NewFile(compound.ID, compound.CompoundName), compound)
}

func (p *Parser) parseGroup(compound *doxml.Compound) []graph.Node {
	group := graph.NewGroup(compound.ID, compound.CompoundName)
	group.Title = compound.Title
	return p.parseFileOrGroup(group, compound)
}

// parseFileOrGroup fills the shared container logic of file and group
// compounds: location, inner class/group references and member-section
// contents. Members listed by reference become children by id only; members
// embedded as full definitions are parsed into nodes that are attached as
// children and also returned as top-level results.
func (p *Parser) parseFileOrGroup(node graph.Node, compound *doxml.Compound) []graph.Node {
	result := []graph.Node{node}
	b := node.Base()
	parseLocation(b, compound.Location)
	b.Desc = parseDescription()

	for _, inner := range compound.InnerClasses {
		b.AddChild(inner.RefID)
	}
	for _, inner := range compound.InnerGroups {
		b.AddChild(inner.RefID)
	}

	for _, section := range compound.Sections {
		for _, member := range section.Members {
			b.AddChild(member.RefID)
		}
		for i := range section.MemberDefs {
			children := p.parseMember(&section.MemberDefs[i])
			for _, child := range children {
				b.AddChild(child.Base().ID)
			}
			result = append(result, children...)
		}
	}
	return result
}

// parseMember parses one embedded member definition. Only function members
// yield a node today.
func (p *Parser) parseMember(member *doxml.Member) []graph.Node {
	if member.Kind != doxml.MemberKindFunction {
		return nil
	}
	return []graph.Node{p.parseFunction(member)}
}

// parseFunction builds a function node from a member definition, with
// parameters in declaration order.
func (p *Parser) parseFunction(member *doxml.Member) *graph.Function {
	fn := graph.NewFunction(member.ID, member.Name)
	parseLocation(&fn.BaseNode, member.Location)
	fn.Desc = parseDescription()
	for _, decl := range member.Params {
		param := fn.AddParam()
		param.Desc = parseDescription()
		param.Name = decl.DeclName
		param.Type = parseType(decl.Type)
	}
	fn.ReturnType = parseType(member.Type)
	return fn
}

func (p *Parser) parseStruct(compound *doxml.Compound, isUnion bool) graph.Node {
	s := graph.NewStruct(compound.ID, compound.CompoundName, isUnion)
	parseLocation(&s.BaseNode, compound.Location)
	s.Desc = parseDescription()
	return s
}
