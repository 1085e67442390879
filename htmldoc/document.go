// Package htmldoc hosts reveal animations in a static HTML document. It finds
// elements to be revealed and owns the single reveal style element in <head>.
package htmldoc

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"reveal/reveal"
)

// AttrReveal marks elements to be revealed, its value is the element ref.
const AttrReveal = "data-reveal"

// Document is a parsed HTML page.
type Document struct {
	log  *zap.Logger
	root *html.Node
}

// Load parses HTML from r. contentType is used to detect the encoding of the
// input and may be empty.
func Load(r io.Reader, contentType string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("unable to detect document encoding: %w", err)
	}
	root, err := html.Parse(utf8)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	return &Document{log: log.Named("htmldoc"), root: root}, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Nodes returns elements carrying AttrReveal in document order.
func (d *Document) Nodes() []*Node {
	var nodes []*Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if _, ok := attr(n, AttrReveal); ok {
				nodes = append(nodes, &Node{n: n})
			}
		}
		return true
	})
	return nodes
}

// Stylesheet returns the state of the reveal style element.
func (d *Document) Stylesheet() reveal.Stylesheet {
	style := d.findStyle()
	if style == nil {
		return reveal.Stylesheet{}
	}
	var sb strings.Builder
	for c := style.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return reveal.Stylesheet{Created: true, Text: sb.String()}
}

// SetStylesheet replaces content of the reveal style element, creating it at
// the end of <head> when necessary.
func (d *Document) SetStylesheet(sheet reveal.Stylesheet) error {
	if !sheet.Created {
		return nil
	}
	style := d.findStyle()
	if style == nil {
		head := findElement(d.root, atom.Head)
		if head == nil {
			return fmt.Errorf("document has no head element")
		}
		style = &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Style,
			Data:     atom.Style.String(),
			Attr: []html.Attribute{
				{Key: "type", Val: "text/css"},
				{Key: reveal.AttrAction, Val: reveal.ActionReveal},
			},
		}
		head.AppendChild(style)
		d.log.Debug("Created reveal stylesheet")
	}
	for c := style.FirstChild; c != nil; c = style.FirstChild {
		style.RemoveChild(c)
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: sheet.Text})
	return nil
}

func (d *Document) findStyle() *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			if v, ok := attr(n, reveal.AttrAction); ok && v == reveal.ActionReveal {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Node is an element of the document, it implements reveal.Node.
type Node struct {
	n *html.Node
}

var _ reveal.Node = (*Node)(nil)

// Ref returns value of AttrReveal.
func (n *Node) Ref() string {
	v, _ := attr(n.n, AttrReveal)
	return strings.TrimSpace(v)
}

// Activated reports whether node was already prepared for revealing, i.e.
// page was processed before.
func (n *Node) Activated() bool {
	v, _ := attr(n.n, reveal.AttrAction)
	return v == reveal.ActionReveal
}

// Classes returns current class list.
func (n *Node) Classes() []string {
	v, _ := attr(n.n, "class")
	return strings.Fields(v)
}

// AddClass appends names missing from the class attribute.
func (n *Node) AddClass(names ...string) {
	classes := n.Classes()
	for _, name := range names {
		if !slices.Contains(classes, name) {
			classes = append(classes, name)
		}
	}
	n.SetAttribute("class", strings.Join(classes, " "))
}

// SetAttribute sets or replaces an attribute.
func (n *Node) SetAttribute(key, value string) {
	for i := range n.n.Attr {
		if n.n.Attr[i].Namespace == "" && n.n.Attr[i].Key == key {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: key, Val: value})
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// walk visits nodes depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findElement(h *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(h, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}
