package graph

// Kind discriminates the node variants. It is fixed per variant and doubles
// as the JSON discriminator field.
type Kind string

const (
	KindFile   Kind = "file"
	KindGroup  Kind = "group"
	KindStruct Kind = "struct"
	KindUnion  Kind = "union"
	KindFunc   Kind = "func"
)

// Node is the closed set of documentation entities produced by parsing.
// Concrete variants are File, Group, Struct and Function.
type Node interface {
	// Base returns the shared identity and relationship record.
	Base() *BaseNode
}

// BaseNode holds the fields common to every node variant. Relationships are
// stored as id sets, not live pointers; resolving an id goes through the
// Registry after merging and may fail for ids of filtered-out compounds.
type BaseNode struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	File string `json:"file"`
	Line int    `json:"line,omitempty"`
	Desc string `json:"desc"`

	// Nil until the first add; a nil set means no relationship was ever
	// recorded, which is distinct from an empty one.
	ParentIDs   IDSet `json:"parent_ids,omitempty"`
	ChildrenIDs IDSet `json:"children_ids,omitempty"`
}

func (b *BaseNode) Base() *BaseNode { return b }

// ShortID returns the human-readable composite key "kind:name". Names are
// not unique, so short ids may collide within a kind.
func (b *BaseNode) ShortID() string {
	return string(b.Kind) + ":" + b.Name
}

// AddParent records a back-reference to a node that lists this node as a child.
func (b *BaseNode) AddParent(id string) {
	if b.ParentIDs == nil {
		b.ParentIDs = make(IDSet)
	}
	b.ParentIDs.Add(id)
}

// AddChild records a forward reference to a child node by id.
func (b *BaseNode) AddChild(id string) {
	if b.ChildrenIDs == nil {
		b.ChildrenIDs = make(IDSet)
	}
	b.ChildrenIDs.Add(id)
}

// File is a header/source compound. Children are inner classes, inner groups
// and member functions.
type File struct {
	BaseNode
}

// NewFile creates a file node.
func NewFile(id, name string) *File {
	return &File{BaseNode: BaseNode{ID: id, Kind: KindFile, Name: name}}
}

// Group is a documentation grouping ("module"). Title is free text and
// distinct from Name.
type Group struct {
	BaseNode
	Title string `json:"title"`
}

// NewGroup creates a group node.
func NewGroup(id, name string) *Group {
	return &Group{BaseNode: BaseNode{ID: id, Kind: KindGroup, Name: name}}
}

// Struct is a struct or union compound, discriminated by IsUnion. Member
// lists are not parsed into child nodes; struct compounds are leaves.
type Struct struct {
	BaseNode
	IsUnion bool `json:"is_union"`
}

// NewStruct creates a struct node, or a union node when isUnion is set.
func NewStruct(id, name string, isUnion bool) *Struct {
	kind := KindStruct
	if isUnion {
		kind = KindUnion
	}
	return &Struct{BaseNode: BaseNode{ID: id, Kind: kind, Name: name}, IsUnion: isUnion}
}

// Param is one declared function parameter. Index is the 0-based position in
// declaration order.
type Param struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
}

// Function is a function member. ReturnType is a flattened type string and
// defaults to "void" when the member carries no type record.
type Function struct {
	BaseNode
	ReturnType string  `json:"return_type"`
	Params     []Param `json:"params"`
}

// NewFunction creates a function node with the default return type.
func NewFunction(id, name string) *Function {
	return &Function{
		BaseNode:   BaseNode{ID: id, Kind: KindFunc, Name: name},
		ReturnType: "void",
	}
}

// AddParam appends a parameter slot and returns a pointer to it for the
// caller to fill in. The index is assigned from the current length.
func (f *Function) AddParam() *Param {
	f.Params = append(f.Params, Param{Index: len(f.Params)})
	return &f.Params[len(f.Params)-1]
}
