package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Node is one matched element within a document.
type Node interface {
	Text() string
	Attr(name string) (string, bool)
}

// Document is the read-only view of a rendered posting. Adapters only issue
// locator queries against it; they never walk the tree themselves.
type Document interface {
	// Find returns the first node matching the locator, nil when nothing
	// matches, and an error for a locator that doesn't compile.
	Find(locator string) (Node, error)
	FindAll(locator string) ([]Node, error)
	// Address is the URL-like address the document was rendered from, used
	// only for job-id derivation and source resolution.
	Address() string
}

// HTMLDocument backs Document with a parsed HTML tree. Locators are CSS
// selectors compiled up front so an invalid expression comes back as an
// error instead of a panic mid-walk.
type HTMLDocument struct {
	doc  *goquery.Document
	addr string
}

func NewHTMLDocument(r io.Reader, addr string) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document html: %w", err)
	}
	return &HTMLDocument{doc: doc, addr: addr}, nil
}

func ParseHTML(html, addr string) (*HTMLDocument, error) {
	return NewHTMLDocument(strings.NewReader(html), addr)
}

func (d *HTMLDocument) Address() string { return d.addr }

func (d *HTMLDocument) Find(locator string) (Node, error) {
	m, err := cascadia.Compile(locator)
	if err != nil {
		return nil, fmt.Errorf("locator %q: %w", locator, err)
	}
	s := d.doc.FindMatcher(m).First()
	if s.Length() == 0 {
		return nil, nil
	}
	return htmlNode{s}, nil
}

func (d *HTMLDocument) FindAll(locator string) ([]Node, error) {
	m, err := cascadia.Compile(locator)
	if err != nil {
		return nil, fmt.Errorf("locator %q: %w", locator, err)
	}
	var out []Node
	d.doc.FindMatcher(m).Each(func(_ int, s *goquery.Selection) {
		out = append(out, htmlNode{s})
	})
	return out, nil
}

type htmlNode struct {
	s *goquery.Selection
}

func (n htmlNode) Text() string { return n.s.Text() }

func (n htmlNode) Attr(name string) (string, bool) { return n.s.Attr(name) }
