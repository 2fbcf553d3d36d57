package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReindex(t *testing.T) {
	reg := NewRegistry()
	group := NewGroup("group__uart", "uart")
	fn := NewFunction("ga1", "uart_poll_in")
	reg.Add(group, fn)
	reg.Reindex()

	assert.Equal(t, 2, reg.Len())

	got, ok := reg.Lookup("group__uart")
	require.True(t, ok)
	assert.Same(t, group, got.(*Group))

	_, ok = reg.Lookup("structunknown")
	assert.False(t, ok, "ids of filtered-out compounds resolve to nothing")
}

func TestRegistryShortIDCollisions(t *testing.T) {
	reg := NewRegistry()
	a := NewStruct("structcfg_1", "cfg", false)
	b := NewStruct("structcfg_2", "cfg", false)
	reg.Add(a, b, NewFunction("ga1", "cfg"))
	reg.Reindex()

	structs := reg.LookupShort("struct:cfg")
	require.Len(t, structs, 2)
	assert.Same(t, a, structs[0].(*Struct))
	assert.Same(t, b, structs[1].(*Struct))

	require.Len(t, reg.LookupShort("func:cfg"), 1)
	assert.Empty(t, reg.LookupShort("file:cfg"))
}

func TestRegistryReindexAfterMoreAdds(t *testing.T) {
	reg := NewRegistry()
	reg.Add(NewFile("file_8h", "file.h"))
	reg.Reindex()
	reg.Add(NewFile("other_8h", "other.h"))
	reg.Reindex()

	_, ok := reg.Lookup("other_8h")
	assert.True(t, ok)
}
