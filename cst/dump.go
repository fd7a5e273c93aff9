package cst

import (
	"encoding/json"

	"github.com/hdltools/svcore/token"
	"github.com/kr/pretty"
)

// jsonSymbol is the wire shape produced for both leaves and nodes:
// nodes carry "tag" and "children", leaves additionally carry
// "start"/"end"/"text".
type jsonSymbol struct {
	Tag      string       `json:"tag"`
	Start    int          `json:"start,omitempty"`
	End      int          `json:"end,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []jsonSymbol `json:"children,omitempty"`
}

// MarshalJSON renders s as the {tag, children} / {tag, start, end, text}
// shape used by golden-file tree dumps and editor-facing debugging tools.
// src is used to render leaf text; pass nil to omit it.
func MarshalJSON(s Symbol, src []byte) ([]byte, error) {
	return json.Marshal(toJSONSymbol(s, src))
}

func toJSONSymbol(s Symbol, src []byte) jsonSymbol {
	if s == nil {
		return jsonSymbol{Tag: "null"}
	}
	switch v := s.(type) {
	case *Leaf:
		js := jsonSymbol{Tag: v.Tok.Kind.String(), Start: v.Tok.Span.Begin, End: v.Tok.Span.End}
		if src != nil {
			js.Text = v.Tok.Text(src)
		}
		return js
	case *Node:
		js := jsonSymbol{Tag: "node#" + pretty.Sprint(int(v.Tag_))}
		for _, c := range v.Children {
			js.Children = append(js.Children, toJSONSymbol(c, src))
		}
		return js
	default:
		return jsonSymbol{Tag: "unknown"}
	}
}

// Dump renders a human-readable, indented tree dump using kr/pretty, for
// eyeballing in test failures and trace output.
func Dump(s Symbol) string {
	return pretty.Sprint(toDumpTree(s))
}

type dumpNode struct {
	Tag      string
	Span     token.Span `pretty:",omitempty"`
	Children []dumpNode `pretty:",omitempty"`
}

func toDumpTree(s Symbol) dumpNode {
	if s == nil {
		return dumpNode{Tag: "<nil>"}
	}
	switch v := s.(type) {
	case *Leaf:
		return dumpNode{Tag: v.Tok.Kind.String(), Span: v.Tok.Span}
	case *Node:
		d := dumpNode{Tag: v.Tag().String()}
		for _, c := range v.Children {
			d.Children = append(d.Children, toDumpTree(c))
		}
		return d
	default:
		return dumpNode{Tag: "?"}
	}
}
