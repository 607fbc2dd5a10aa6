package view

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/dshills/blockwright/internal/component"
	"github.com/dshills/blockwright/internal/dom"
	"github.com/dshills/blockwright/internal/event"
)

// Attributes set on every rendered element.
const (
	AttrID   = "data-bw-id"
	AttrType = "data-bw-type"
)

// View is the rendered counterpart of one component node.
type View struct {
	reg     *Registry
	node    *component.Node
	variant Variant

	el       *html.Node
	children []*View
	subs     []*event.Subscription

	// content holds the variant's own nodes. They stay ahead of the
	// elements of child views.
	content []*html.Node

	// applied holds the attributes written by the last update, so
	// attributes dropped from the model can be removed.
	applied map[string]string

	rendered  bool
	dirty     bool
	destroyed bool
}

// Node returns the bound node, or nil after Destroy.
func (v *View) Node() *component.Node {
	if v.destroyed {
		return nil
	}
	return v.node
}

// Variant returns the variant rendering this view.
func (v *View) Variant() Variant { return v.variant }

// Element returns the view's element, or nil before the first Render.
func (v *View) Element() *html.Node { return v.el }

// Rendered reports whether Render has completed at least once.
func (v *View) Rendered() bool { return v.rendered }

// Dirty reports whether the model changed since the last Render.
func (v *View) Dirty() bool { return v.dirty }

// Destroyed reports whether the view was destroyed.
func (v *View) Destroyed() bool { return v.destroyed }

// ChildViews returns the child views in model order.
func (v *View) ChildViews() []*View {
	out := make([]*View, len(v.children))
	copy(out, v.children)
	return out
}

// Content returns the nodes the variant placed in the element.
func (v *View) Content() []*html.Node {
	out := make([]*html.Node, len(v.content))
	copy(out, v.content)
	return out
}

// SetContent replaces the variant-owned nodes of the element. Elements of
// child views are left in place.
func (v *View) SetContent(nodes ...*html.Node) {
	if v.el == nil {
		return
	}
	for _, n := range v.content {
		if n.Parent == v.el {
			v.el.RemoveChild(n)
		}
	}
	first := v.el.FirstChild
	for _, n := range nodes {
		dom.Detach(n)
		v.el.InsertBefore(n, first)
	}
	v.content = append([]*html.Node(nil), nodes...)
}

func (v *View) subscribe() {
	v.subs = []*event.Subscription{
		v.node.On(event.Change, func(any) { v.onChange() }),
		v.node.On(event.ChildrenChanged, func(any) { v.onChildrenChanged() }),
		v.node.On(event.Destroy, func(any) { v.Destroy() }),
	}
}

func (v *View) onChange() {
	if v.destroyed {
		return
	}
	if !v.rendered {
		v.dirty = true
		return
	}
	v.update()
}

func (v *View) onChildrenChanged() {
	if v.destroyed {
		return
	}
	if !v.rendered {
		v.dirty = true
		return
	}
	// Child binding can only fail on programmer error; the next Render
	// reports it.
	if err := v.reconcile(); err != nil {
		v.dirty = true
	}
}

// Render produces the view's element and brings it up to date with the
// model. The same element is returned on every call.
func (v *View) Render() (*html.Node, error) {
	if v.destroyed || v.node == nil {
		return nil, ErrUnbound
	}
	if v.el == nil {
		tag := v.node.GetString("tagName")
		if tag == "" {
			tag = v.node.Type().TagName()
		}
		v.el = dom.NewElement(tag)
	}

	v.update()
	if err := v.reconcile(); err != nil {
		return v.el, err
	}
	v.rendered = true
	v.dirty = false
	return v.el, nil
}

func (v *View) update() {
	want := v.attributes()
	for k := range v.applied {
		if _, ok := want[k]; !ok {
			dom.RemoveAttr(v.el, k)
		}
	}
	keys := make([]string, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dom.SetAttr(v.el, k, want[k])
	}
	v.applied = want

	v.variant.RenderContent(v, v.el)
}

// attributes computes the element attributes from the model: the
// attributes map, the classes list, the style map and the identity
// attributes.
func (v *View) attributes() map[string]string {
	out := make(map[string]string)
	switch attrs := v.node.Get("attributes").(type) {
	case map[string]any:
		for k, val := range attrs {
			if val != nil {
				out[k] = toString(val)
			}
		}
	case map[string]string:
		for k, val := range attrs {
			out[k] = val
		}
	}

	if classes := stringList(v.node.Get("classes")); len(classes) > 0 {
		out["class"] = strings.Join(classes, " ")
	}

	if style, ok := v.node.Get("style").(map[string]any); ok && len(style) > 0 {
		props := make([]string, 0, len(style))
		for k := range style {
			props = append(props, k)
		}
		sort.Strings(props)
		decls := make([]string, 0, len(props))
		for _, p := range props {
			decls = append(decls, p+": "+toString(style[p]))
		}
		out["style"] = strings.Join(decls, "; ")
	}

	out[AttrID] = v.node.ID()
	out[AttrType] = v.node.Type().Name()
	return out
}

// reconcile brings child views and their elements in line with the node's
// children, reusing views of nodes that are still present.
func (v *View) reconcile() error {
	if !v.node.Type().AcceptsChildren() {
		return nil
	}

	existing := make(map[*component.Node]*View, len(v.children))
	for _, cv := range v.children {
		if !cv.destroyed {
			existing[cv.node] = cv
		}
	}

	nodes := v.node.Children()
	next := make([]*View, 0, len(nodes))
	kept := make(map[*View]bool, len(nodes))
	var created []*View
	abort := func(err error) error {
		for _, cv := range created {
			cv.Destroy()
		}
		return err
	}
	for _, n := range nodes {
		cv, ok := existing[n]
		if !ok {
			var err error
			if cv, err = v.reg.Bind(n); err != nil {
				return abort(fmt.Errorf("bind %s: %w", n.ID(), err))
			}
			created = append(created, cv)
			if _, err := cv.Render(); err != nil {
				return abort(fmt.Errorf("render %s: %w", n.ID(), err))
			}
		}
		kept[cv] = true
		next = append(next, cv)
	}

	for _, cv := range v.children {
		if !kept[cv] {
			cv.Destroy()
		}
	}
	v.children = next

	offset := len(v.content)
	for i, cv := range next {
		dom.PlaceAt(v.el, cv.el, offset+i)
	}
	for stale := childAt(v.el, offset+len(next)); stale != nil; {
		following := stale.NextSibling
		v.el.RemoveChild(stale)
		stale = following
	}

	v.reg.reconciled(v)
	return nil
}

// Destroy unsubscribes the view, destroys its child views and detaches
// its element. Calling it again has no effect.
func (v *View) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true

	for _, s := range v.subs {
		s.Unsubscribe()
	}
	v.subs = nil

	for _, cv := range v.children {
		cv.Destroy()
	}
	v.children = nil

	if v.el != nil {
		dom.Detach(v.el)
	}
	v.node.ReleaseView()

	if obs := v.reg.forget(v); obs != nil {
		obs.OnViewDestroyed(v)
	}
}

func childAt(parent *html.Node, index int) *html.Node {
	c := parent.FirstChild
	for i := 0; i < index && c != nil; i++ {
		c = c.NextSibling
	}
	return c
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func stringList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item != nil {
				out = append(out, toString(item))
			}
		}
		return out
	case string:
		return strings.Fields(v)
	}
	return nil
}
