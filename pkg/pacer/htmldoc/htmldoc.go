// Package htmldoc adapts raw page HTML to the pacer.InputSource capability.
package htmldoc

import (
	"fmt"
	"io"
	"recap/pkg/pacer"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document holds the parts of a parsed page that the classifier inspects.
type Document struct {
	inputs []string
}

// Ensure Document conforms to pacer.InputSource at compile time.
var _ pacer.InputSource = (*Document)(nil)

// Parse reads an HTML page and collects the value of every input element in
// document order. Inputs without a value attribute contribute "".
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	inputs := doc.Find("input")
	values := make([]string, 0, inputs.Length())
	inputs.Each(func(_ int, s *goquery.Selection) {
		values = append(values, s.AttrOr("value", ""))
	})

	return &Document{inputs: values}, nil
}

// ParseString is Parse over an in-memory page.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// InputValues implements pacer.InputSource. A nil Document has no inputs.
func (d *Document) InputValues() []string {
	if d == nil {
		return nil
	}

	return d.inputs
}
