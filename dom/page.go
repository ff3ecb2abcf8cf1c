// Package dom models the live page a site adapter drives: an HTML tree queried with CSS selectors,
// plus the per-node state a browser keeps outside the markup (media playback, layout, listeners).
//
// Every read of the tree takes the page's read lock and every structural or attribute write its
// write lock, so a background refresher and the synchronous query path can share one Page.
package dom

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a parsed document together with its URL and browser-side state.
type Page struct {
	mu        sync.RWMutex
	doc       *goquery.Document
	url       *url.URL
	media     map[*html.Node]*Media
	rects     map[*html.Node]Rect
	listeners map[*html.Node]map[EventKind][]Listener
}

// Parse reads an HTML document and binds it to rawURL, which is used to resolve relative links.
func Parse(r io.Reader, rawURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	return &Page{
		doc:       doc,
		url:       u,
		media:     make(map[*html.Node]*Media),
		rects:     make(map[*html.Node]Rect),
		listeners: make(map[*html.Node]map[EventKind][]Listener),
	}, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(document, rawURL string) (*Page, error) {
	return Parse(strings.NewReader(document), rawURL)
}

// Root returns the document node. Queries against it search the whole page.
func (p *Page) Root() *Element {
	return &Element{page: p, node: p.doc.Selection.Get(0)}
}

// First is shorthand for Root().First(css).
func (p *Page) First(css string) *Element {
	return p.Root().First(css)
}

// URL returns a copy of the page URL.
func (p *Page) URL() *url.URL {
	p.mu.RLock()
	defer p.mu.RUnlock()

	u := *p.url
	return &u
}

// SetURL navigates the page in place, as single-page applications do.
func (p *Page) SetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse page url: %w", err)
	}

	p.mu.Lock()
	p.url = u
	p.mu.Unlock()
	return nil
}

// SetRect records the layout box of an element.
func (p *Page) SetRect(el *Element, r Rect) {
	if el == nil {
		return
	}

	p.mu.Lock()
	p.rects[el.node] = r
	p.mu.Unlock()
}

// Listen registers fn for events of kind reaching el, either as target or while bubbling.
func (p *Page) Listen(el *Element, kind EventKind, fn Listener) {
	if el == nil || fn == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	byKind, ok := p.listeners[el.node]
	if !ok {
		byKind = make(map[EventKind][]Listener)
		p.listeners[el.node] = byKind
	}
	byKind[kind] = append(byKind[kind], fn)
}

// HTML renders the current document, mostly for debugging fixtures.
func (p *Page) HTML() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return goquery.OuterHtml(p.doc.Selection)
}

func (p *Page) mediaFor(n *html.Node) *Media {
	p.mu.Lock()
	defer p.mu.Unlock()

	if m, ok := p.media[n]; ok {
		return m
	}

	m := newMedia(hasAttr(n, "muted"), hasAttr(n, "loop"), hasAttr(n, "autoplay"))
	p.media[n] = m
	return m
}

// dispatch runs the listeners of the target and its ancestors, innermost first.
// Listeners are collected under the read lock and invoked without it so they may mutate the page.
func (p *Page) dispatch(target *html.Node, ev Event) {
	var chain []Listener

	p.mu.RLock()
	for n := target; n != nil; n = n.Parent {
		if byKind, ok := p.listeners[n]; ok {
			chain = append(chain, byKind[ev.Kind]...)
		}
	}
	p.mu.RUnlock()

	for _, fn := range chain {
		fn(ev)
	}
}
