package doxml

import "encoding/xml"

// LinkedText is mixed element content: plain text interleaved with <ref>
// elements pointing at other documented entities. Fragment order matches the
// document.
type LinkedText struct {
	Fragments []Fragment
}

// Fragment is one piece of a LinkedText. For a reference fragment IsRef is
// set, RefID names the target and Text carries the display value.
type Fragment struct {
	Text  string
	IsRef bool
	RefID string
}

// UnmarshalXML decodes the mixed content of the element, preserving the
// interleaving of character data and <ref> children. Other child elements
// are skipped.
func (lt *LinkedText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			lt.Fragments = append(lt.Fragments, Fragment{Text: string(t)})
		case xml.StartElement:
			if t.Name.Local == "ref" {
				var ref struct {
					RefID string `xml:"refid,attr"`
					Value string `xml:",chardata"`
				}
				if err := d.DecodeElement(&ref, &t); err != nil {
					return err
				}
				lt.Fragments = append(lt.Fragments, Fragment{Text: ref.Value, IsRef: true, RefID: ref.RefID})
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}
