package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads an XML document and returns its root element. Namespace
// prefixes are discarded; the model layer works on local names only.
// Comments, processing instructions, and whitespace-only text are dropped.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var cur *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: parse: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.SetAttribute(a.Name.Local, a.Value)
			}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("xmltree: parse: multiple root elements")
				}
				root = n
			} else {
				cur.AppendChild(n)
			}
			cur = n
		case xml.EndElement:
			if cur == nil {
				return nil, fmt.Errorf("xmltree: parse: unbalanced end element %s", t.Name.Local)
			}
			cur = cur.parent
		case xml.CharData:
			if cur == nil {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				cur.SetText(cur.Text() + text)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("xmltree: parse: no root element")
	}
	if cur != nil {
		return nil, fmt.Errorf("xmltree: parse: unexpected end of document inside %s", cur.LocalName())
	}
	return root, nil
}
