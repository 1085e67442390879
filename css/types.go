package css

import (
	"fmt"
	"io"
	"strings"
)

// MediaFeature is a single width condition of a media query, e.g.
// "(min-width: 769px)". Value is in pixels.
type MediaFeature struct {
	Name  string // "min-width" or "max-width"
	Value int
}

// MediaQuery represents one comma separated entry of a @media prelude.
type MediaQuery struct {
	Raw      string         // Original query text
	Type     string         // Media type (e.g. "all", "screen"), empty when only features are present
	Negated  bool           // true if "not" modifier was used
	Features []MediaFeature // Conditions joined with "and"
}

// Matches returns true if the query applies to a viewport of the given width.
func (mq MediaQuery) Matches(width int) bool {
	var matches bool
	switch strings.ToLower(mq.Type) {
	case "", "all", "screen":
		matches = true
	default:
		matches = false // Unknown media type
	}

	// Evaluate all features (AND logic)
	for _, f := range mq.Features {
		if !matches {
			break
		}
		switch f.Name {
		case "min-width":
			matches = width >= f.Value
		case "max-width":
			matches = width <= f.Value
		default:
			matches = false
		}
	}

	if mq.Negated {
		matches = !matches
	}
	return matches
}

// MediaQueryList is the comma separated (OR) list of queries of a @media block.
type MediaQueryList []MediaQuery

// Matches returns true if any query of the list applies to width.
func (l MediaQueryList) Matches(width int) bool {
	for _, mq := range l {
		if mq.Matches(width) {
			return true
		}
	}
	return false
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule (selector + declarations in source order).
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// GetProperty returns the value of the last declaration of a property.
func (r Rule) GetProperty(name string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// MediaBlock represents a @media block with its queries and nested rules.
type MediaBlock struct {
	Raw     string // Query list as written
	Queries MediaQueryList
	Rules   []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or MediaBlock is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for skipped content
}

// Rules returns all rules in source order, including rules nested in
// @media blocks.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil:
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []*MediaBlock {
	var blocks []*MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, item.MediaBlock)
		}
	}
	return blocks
}

// RulesBySelector returns all rules (top-level and nested) matching the given
// selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, rule := range s.Rules() {
		if rule.Selector == selector {
			matches = append(matches, rule)
		}
	}
	return matches
}

// ActiveRules returns rules that apply to a viewport of the given width.
func (s *Stylesheet) ActiveRules(width int) []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil && item.MediaBlock.Queries.Matches(width):
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declaration order is preserved, vendor prefixed variants depend on it.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w with the given indentation.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
