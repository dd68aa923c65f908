package selector

import (
	"bytes"
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Def is a declarative selector description, usually loaded from YAML. Either
// the fragment fields or the combine fields (Left/Right plus Combinator) are
// set, never both.
//
//	element: a
//	attributes: ['href$=".png"']
//	pseudo_classes: [focus]
//
//	combinator: ">"
//	left: {element: ul}
//	right: {element: li, pseudo_classes: [first-child]}
type Def struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	Combinator string `yaml:"combinator,omitempty"`
	Left       *Def   `yaml:"left,omitempty"`
	Right      *Def   `yaml:"right,omitempty"`
}

// LoadDef decodes a single YAML selector definition. Unknown fields are
// rejected to catch typos in hand-written files.
func LoadDef(data []byte) (*Def, error) {
	var d Def
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding selector definition: %w", err)
	}
	return &d, nil
}

// Build replays the definition through the fluent API, so every ordering and
// cardinality rule applies the same way as for hand-built selectors.
func (d *Def) Build() (*Builder, error) {
	if d.Left != nil || d.Right != nil {
		return d.buildCombined()
	}

	b := new(Builder)
	if d.Combinator != "" {
		return nil, errors.New("combinator requires both left and right definitions")
	}
	if d.Element != "" {
		b.Element(d.Element)
	}
	if d.ID != "" {
		b.ID(d.ID)
	}
	for _, c := range d.Classes {
		b.Class(c)
	}
	for _, a := range d.Attributes {
		b.Attribute(a)
	}
	for _, pc := range d.PseudoClasses {
		b.PseudoClass(pc)
	}
	if d.PseudoElement != "" {
		b.PseudoElement(d.PseudoElement)
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	if len(b.frags) == 0 {
		return nil, errors.New("empty selector definition")
	}
	return b, nil
}

func (d *Def) buildCombined() (*Builder, error) {
	if d.Left == nil || d.Right == nil {
		return nil, errors.New("combined definition requires both left and right")
	}
	if d.Element != "" || d.ID != "" || d.PseudoElement != "" ||
		len(d.Classes)+len(d.Attributes)+len(d.PseudoClasses) > 0 {
		return nil, errors.New("combined definition cannot carry fragments of its own")
	}
	left, err := d.Left.Build()
	if err != nil {
		return nil, fmt.Errorf("left side: %w", err)
	}
	right, err := d.Right.Build()
	if err != nil {
		return nil, fmt.Errorf("right side: %w", err)
	}
	tok := d.Combinator
	if tok == "" {
		// descendant by default
		tok = " "
	}
	return Combine(left, tok, right), nil
}
