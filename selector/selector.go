// Package selector resolves the compact selector syntax the site adapters use against a page.
//
// A selector is either a plain CSS selector, meaning its first match, or "(css)[i]" for the i-th
// match counted from zero. Resolution never fails loudly: a missing scope, a missing match, an
// extractor error or an empty extraction all come back as an absent value.
package selector

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"

	"github.com/andybalholm/cascadia"
	"github.com/nowplaying-cli/nowplaying/dom"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/samber/mo"
)

// Spec is a parsed selector expression.
type Spec struct {
	Raw   string
	CSS   string
	Index int
}

var indexed = regexp.MustCompile(`^\((.*)\)\[(.*)\]$`)

// Parse splits raw into its CSS part and match index. It accepts any string; indices that are
// not non-negative integers become 0.
func Parse(raw string) Spec {
	m := indexed.FindStringSubmatch(raw)
	if m == nil {
		return Spec{Raw: raw, CSS: raw}
	}

	index, err := strconv.Atoi(m[2])
	if err != nil || index < 0 {
		index = 0
	}
	return Spec{Raw: raw, CSS: m[1], Index: index}
}

// Valid reports whether the CSS part compiles. Invalid selectors simply never match.
func (s Spec) Valid() bool {
	_, err := cascadia.Compile(s.CSS)
	return err == nil
}

func (s Spec) String() string {
	if s.Index == 0 {
		return s.CSS
	}
	return fmt.Sprintf("(%s)[%d]", s.CSS, s.Index)
}

// Element returns the indexed match of s under scope.
func (s Spec) Element(scope *dom.Element) mo.Option[*dom.Element] {
	if scope == nil {
		return mo.None[*dom.Element]()
	}

	matches := scope.Find(s.CSS)
	if s.Index >= len(matches) {
		return mo.None[*dom.Element]()
	}
	return mo.Some(matches[s.Index])
}

// Extractor reads a value off a resolved element.
type Extractor[T any] func(el *dom.Element) (T, error)

// Lookup resolves raw under scope and extracts a value from the match. The extractor is not
// called when nothing matches. Errors, panics and empty results are all None.
func Lookup[T any](scope *dom.Element, raw string, extract Extractor[T]) mo.Option[T] {
	el, ok := Parse(raw).Element(scope).Get()
	if !ok {
		return mo.None[T]()
	}
	return extractSafely(el, extract)
}

// Resolve is Lookup collapsed to fallback at the boundary.
func Resolve[T any](scope *dom.Element, raw string, extract Extractor[T], fallback T) T {
	return Lookup(scope, raw, extract).OrElse(fallback)
}

// Report is Resolve with a debug diagnostic naming op when the value is absent.
func Report[T any](scope *dom.Element, raw string, extract Extractor[T], fallback T, op string) T {
	v, ok := Lookup(scope, raw, extract).Get()
	if !ok {
		log.Op(op, "no value for %q", raw)
		return fallback
	}
	return v
}

// Invoke runs action on the resolved element. It is a no-op when nothing matches and logs a
// debug diagnostic naming op, if one is given. It reports whether the action ran.
func Invoke(scope *dom.Element, raw string, action func(el *dom.Element), op string) bool {
	el, ok := Parse(raw).Element(scope).Get()
	if !ok {
		if op != "" {
			log.Op(op, "no element for %q", raw)
		}
		return false
	}

	action(el)
	return true
}

// Present applies the falsy-collapse rule: nil pointers, slices, maps, funcs, channels and
// interfaces, empty strings and NaN are absent. Zero numbers and false are present.
func Present[T any](v T) bool {
	switch x := any(v).(type) {
	case nil:
		return false
	case string:
		return x != ""
	case float64:
		return !math.IsNaN(x)
	case float32:
		return !math.IsNaN(float64(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	case reflect.String:
		return rv.Len() > 0
	}
	return true
}

// Collapse wraps v as Some when Present, else None.
func Collapse[T any](v T) mo.Option[T] {
	if Present(v) {
		return mo.Some(v)
	}
	return mo.None[T]()
}

func extractSafely[T any](el *dom.Element, extract Extractor[T]) (result mo.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = mo.None[T]()
		}
	}()

	v, err := extract(el)
	if err != nil {
		return mo.None[T]()
	}
	return Collapse(v)
}
