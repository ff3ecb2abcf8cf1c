package dom

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a handle to one node of a Page. Handles stay valid while the node is detached,
// but queries against a detached node only see its own subtree.
type Element struct {
	page *Page
	node *html.Node
}

// Find returns every descendant matching css in document order.
// An invalid selector matches nothing.
func (e *Element) Find(css string) []*Element {
	if e == nil {
		return nil
	}

	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	nodes := goquery.NewDocumentFromNode(e.node).Find(css).Nodes
	found := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		found = append(found, &Element{page: e.page, node: n})
	}
	return found
}

// First returns the first descendant matching css, or nil.
func (e *Element) First(css string) *Element {
	if all := e.Find(css); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Page returns the page this element belongs to.
func (e *Element) Page() *Page {
	return e.page
}

// Is reports whether both handles point at the same node.
func (e *Element) Is(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.node == other.node
}

// Matches reports whether the element itself matches css.
func (e *Element) Matches(css string) bool {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	return goquery.NewDocumentFromNode(e.node).Is(css)
}

// Closest returns the nearest ancestor-or-self matching css, or nil.
func (e *Element) Closest(css string) *Element {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	found := goquery.NewDocumentFromNode(e.node).Closest(css)
	if found.Length() == 0 {
		return nil
	}
	return &Element{page: e.page, node: found.Get(0)}
}

// LocalName is the lower-case tag name, or "#document" for the root.
func (e *Element) LocalName() string {
	if e.node.Type != html.ElementNode {
		return "#document"
	}
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(name, value string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace != "" || a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// Text is the element's text content with runs of whitespace collapsed, close to innerText.
func (e *Element) Text() string {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	raw := goquery.NewDocumentFromNode(e.node).Text()
	return strings.Join(strings.Fields(raw), " ")
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return &Element{page: e.page, node: p}
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Element{page: e.page, node: c})
		}
	}
	return children
}

// Href returns the href attribute resolved against the page URL, or "" when absent or unparsable.
func (e *Element) Href() string {
	raw, ok := e.Attr("href")
	if !ok || raw == "" {
		return ""
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return e.page.URL().ResolveReference(ref).String()
}

// AppendHTML parses fragment in the context of e and appends the resulting nodes.
func (e *Element) AppendHTML(fragment string) error {
	ctx := e.node
	if ctx.Type != html.ElementNode {
		ctx = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return err
	}

	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	e.page.mu.Lock()
	defer e.page.mu.Unlock()

	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// Media returns the playback state of a video or audio element.
func (e *Element) Media() (*Media, bool) {
	switch e.node.DataAtom {
	case atom.Video, atom.Audio:
		return e.page.mediaFor(e.node), true
	default:
		return nil, false
	}
}

// Rect returns the element's layout box; elements without layout report the zero Rect.
func (e *Element) Rect() Rect {
	e.page.mu.RLock()
	defer e.page.mu.RUnlock()

	return e.page.rects[e.node]
}

// Click dispatches a click event at the element.
func (e *Element) Click() {
	e.Dispatch(Event{Kind: Click})
}

// Dispatch sends ev to the element's listeners and then bubbles it up to its ancestors.
func (e *Element) Dispatch(ev Event) {
	ev.Target = e
	e.page.dispatch(e.node, ev)
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return true
		}
	}
	return false
}
