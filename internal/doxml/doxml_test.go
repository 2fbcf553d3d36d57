package doxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIndex(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<doxygenindex version="1.9.6">
  <compound refid="group__uart" kind="group"><name>uart</name></compound>
  <compound refid="structuart__config" kind="struct"><name>uart_config</name></compound>
  <compound refid="indexpage" kind="page"><name>index</name></compound>
</doxygenindex>`

	idx, err := DecodeIndex(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, idx.Compounds, 3)
	assert.Equal(t, "group__uart", idx.Compounds[0].RefID)
	assert.Equal(t, KindGroup, idx.Compounds[0].Kind)
	assert.Equal(t, KindStruct, idx.Compounds[1].Kind)
	assert.Equal(t, KindPage, idx.Compounds[2].Kind)
}

func TestDecodeIndexMalformed(t *testing.T) {
	_, err := DecodeIndex(strings.NewReader("<doxygenindex><compound"))
	require.Error(t, err)
}

func TestDecodeDocument(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<doxygen version="1.9.6">
  <compounddef id="group__uart" kind="group">
    <compoundname>uart</compoundname>
    <title>UART driver</title>
    <innerclass refid="structuart__config" prot="public">uart_config</innerclass>
    <innergroup refid="group__uart__mux">uart_mux</innergroup>
    <sectiondef kind="func">
      <member refid="group__uart_1ga1"/>
      <memberdef kind="function" id="group__uart_1ga2" prot="public" static="no">
        <type>const struct <ref refid="structdevice" kindref="compound">device</ref> *</type>
        <name>uart_dev_get</name>
        <param>
          <type>int</type>
          <declname>idx</declname>
        </param>
        <location file="include/uart.h" line="55" bodyfile="src/uart.c" bodystart="200"/>
      </memberdef>
    </sectiondef>
    <location file="include/uart.h" line="1" declfile="include/uart.h" declline="1"/>
  </compounddef>
</doxygen>`

	parsed, err := DecodeDocument(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, parsed.Compounds, 1)

	c := parsed.Compounds[0]
	assert.Equal(t, "group__uart", c.ID)
	assert.Equal(t, KindGroup, c.Kind)
	assert.Equal(t, "uart", c.CompoundName)
	assert.Equal(t, "UART driver", c.Title)

	require.Len(t, c.InnerClasses, 1)
	assert.Equal(t, "structuart__config", c.InnerClasses[0].RefID)
	assert.Equal(t, "uart_config", c.InnerClasses[0].Name)
	require.Len(t, c.InnerGroups, 1)
	assert.Equal(t, "group__uart__mux", c.InnerGroups[0].RefID)

	require.NotNil(t, c.Location)
	assert.Equal(t, "include/uart.h", c.Location.File)
	assert.Equal(t, 1, c.Location.Line)
	assert.Equal(t, "include/uart.h", c.Location.DeclFile)

	require.Len(t, c.Sections, 1)
	section := c.Sections[0]
	require.Len(t, section.Members, 1)
	assert.Equal(t, "group__uart_1ga1", section.Members[0].RefID)

	require.Len(t, section.MemberDefs, 1)
	member := section.MemberDefs[0]
	assert.Equal(t, "group__uart_1ga2", member.ID)
	assert.Equal(t, MemberKindFunction, member.Kind)
	assert.Equal(t, "uart_dev_get", member.Name)
	require.NotNil(t, member.Location)
	assert.Equal(t, "src/uart.c", member.Location.BodyFile)
	assert.Equal(t, 200, member.Location.BodyStart)

	require.Len(t, member.Params, 1)
	assert.Equal(t, "idx", member.Params[0].DeclName)
}

func TestLinkedTextMixedContent(t *testing.T) {
	doc := `<doxygen>
  <compounddef id="f" kind="file">
    <compoundname>f.h</compoundname>
    <sectiondef>
      <memberdef kind="function" id="f1">
        <type>const struct <ref refid="structfoo">foo</ref> *</type>
        <name>get_foo</name>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

	parsed, err := DecodeDocument(strings.NewReader(doc))
	require.NoError(t, err)

	lt := parsed.Compounds[0].Sections[0].MemberDefs[0].Type
	require.NotNil(t, lt)
	require.Len(t, lt.Fragments, 3)

	assert.Equal(t, Fragment{Text: "const struct "}, lt.Fragments[0])
	assert.Equal(t, Fragment{Text: "foo", IsRef: true, RefID: "structfoo"}, lt.Fragments[1])
	assert.Equal(t, Fragment{Text: " *"}, lt.Fragments[2])
}

func TestLinkedTextAbsent(t *testing.T) {
	doc := `<doxygen>
  <compounddef id="f" kind="file">
    <compoundname>f.h</compoundname>
    <sectiondef>
      <memberdef kind="function" id="f1">
        <name>do_nothing</name>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

	parsed, err := DecodeDocument(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Nil(t, parsed.Compounds[0].Sections[0].MemberDefs[0].Type)
}

func TestLinkedTextSkipsUnknownChildren(t *testing.T) {
	doc := `<doxygen>
  <compounddef id="f" kind="file">
    <compoundname>f.h</compoundname>
    <sectiondef>
      <memberdef kind="function" id="f1">
        <type>int<unknown><nested/></unknown>32_t</type>
        <name>width</name>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

	parsed, err := DecodeDocument(strings.NewReader(doc))
	require.NoError(t, err)

	lt := parsed.Compounds[0].Sections[0].MemberDefs[0].Type
	require.NotNil(t, lt)

	var flat strings.Builder
	for _, frag := range lt.Fragments {
		flat.WriteString(frag.Text)
	}
	assert.Equal(t, "int32_t", flat.String())
}
