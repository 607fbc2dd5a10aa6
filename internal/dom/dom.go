// Package dom provides element helpers over golang.org/x/net/html nodes.
//
// Views produce *html.Node trees. This package keeps the few operations
// views need (class and inline style manipulation, exact child placement,
// selector lookup, serialization) in one place.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Errors returned by selector resolution.
var (
	// ErrInvalidSelector indicates a selector that does not compile.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrNoMatch indicates a selector that matched nothing.
	ErrNoMatch = errors.New("selector matched no element")
)

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr returns the value of an attribute.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing an existing value in place.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// Classes returns the element's class list.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// SetClass replaces the element's class attribute.
func SetClass(n *html.Node, classes ...string) {
	var parts []string
	for _, c := range classes {
		parts = append(parts, strings.Fields(c)...)
	}
	if len(parts) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(parts, " "))
}

// HasClass reports whether the element carries the class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// Style returns one inline style property.
func Style(n *html.Node, prop string) string {
	for _, d := range parseStyle(n) {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

// SetStyle sets one inline style property. An empty value removes it.
// Declaration order is preserved.
func SetStyle(n *html.Node, prop, value string) {
	decls := parseStyle(n)
	found := false
	out := decls[:0]
	for _, d := range decls {
		if d[0] == prop {
			found = true
			if value == "" {
				continue
			}
			d[1] = value
		}
		out = append(out, d)
	}
	if !found && value != "" {
		out = append(out, [2]string{prop, value})
	}

	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(out))
	for i, d := range out {
		parts[i] = d[0] + ": " + d[1]
	}
	SetAttr(n, "style", strings.Join(parts, "; "))
}

func parseStyle(n *html.Node) [][2]string {
	raw, _ := Attr(n, "style")
	var decls [][2]string
	for _, decl := range strings.Split(raw, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		val = strings.TrimSpace(val)
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, val})
	}
	return decls
}

// Children returns the direct children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Clear removes every child of n.
func Clear(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// PlaceAt moves child so that it is the index-th child of parent. The
// child is detached from any previous parent first. An index past the end
// appends.
func PlaceAt(parent, child *html.Node, index int) {
	if childAt(parent, index) == child {
		return
	}
	Detach(child)
	parent.InsertBefore(child, childAt(parent, index))
}

func childAt(parent *html.Node, index int) *html.Node {
	c := parent.FirstChild
	for i := 0; i < index && c != nil; i++ {
		c = c.NextSibling
	}
	return c
}

// Contains reports whether n is ancestor or n itself.
func Contains(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Parse parses a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString parses a full HTML document from a string.
func ParseString(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}

// Query returns the first element under root matching the CSS selector.
func Query(root *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	n := sel.MatchFirst(root)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	return n, nil
}

// QueryClass returns the first descendant of root carrying class.
func QueryClass(root *html.Node, class string) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && HasClass(c, class) {
			return c
		}
		if found := QueryClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// Render serializes n and its subtree.
func Render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// TextContent returns the concatenated text of n's subtree.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
