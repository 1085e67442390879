package css

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule != "@media" {
				p.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				continue
			}
			raw, queries := parseMediaQueries(parser.Values())
			rules := p.parseMediaBlockRules(parser, sheet)
			p.log.Debug("Parsed @media block", zap.String("query", raw), zap.Int("rules", len(rules)))
			sheet.Items = append(sheet.Items, StylesheetItem{
				MediaBlock: &MediaBlock{Raw: raw, Queries: queries, Rules: rules},
			})

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			for _, rule := range p.parseRuleset(parser, data) {
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
			}

		case css.DeclarationGrammar:
			// Declaration outside of any block
			sheet.Warnings = append(sheet.Warnings, "declaration outside of rule: "+string(data))
		}
	}
}

// parseRuleset creates one rule per selector of a selector group sharing the
// declarations of the block.
func (p *Parser) parseRuleset(parser *css.Parser, data []byte) []Rule {
	selectors := parseSelectors(data, parser.Values())
	decls := p.parseDeclarations(parser)

	rules := make([]Rule, 0, len(selectors))
	for _, sel := range selectors {
		rules = append(rules, Rule{
			Selector:     sel,
			Declarations: append([]Declaration(nil), decls...),
		})
	}
	return rules
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	// Build full selector string from data and values
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) > 0 {
				decls = append(decls, Declaration{Property: string(data), Value: rawValue(values)})
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are never produced for reveal rules
			continue
		}
	}
}

// rawValue joins value tokens collapsing whitespace into single spaces.
func rawValue(tokens []css.Token) string {
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(rawParts, ""))
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaQueries parses a media query list from CSS tokens.
// Handles lists like "(max-width: 480px), (min-width: 769px) and
// (max-width: 1024px)" and "not all".
func parseMediaQueries(tokens []css.Token) (string, MediaQueryList) {
	raw := rawValue(tokens)

	var (
		queries MediaQueryList
		group   []css.Token
	)
	flush := func() {
		if mq, ok := parseMediaQuery(group); ok {
			queries = append(queries, mq)
		}
		group = group[:0]
	}
	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			flush()
			continue
		}
		group = append(group, t)
	}
	flush()
	return raw, queries
}

// parseMediaQuery parses a single query.
// Format: [not|only] [type] [and (feature: value)]...
func parseMediaQuery(tokens []css.Token) (MediaQuery, bool) {
	mq := MediaQuery{Raw: rawValue(tokens)}
	if mq.Raw == "" {
		return mq, false
	}

	var (
		depth   int
		feature MediaFeature
	)
	for _, t := range tokens {
		switch t.TokenType {
		case css.LeftParenthesisToken:
			depth++
			feature = MediaFeature{}
		case css.RightParenthesisToken:
			depth--
			if feature.Name != "" {
				mq.Features = append(mq.Features, feature)
			}
		case css.IdentToken:
			ident := strings.ToLower(string(t.Data))
			switch {
			case depth > 0:
				feature.Name = ident
			case ident == "not":
				mq.Negated = true
			case ident == "and", ident == "only":
			default:
				mq.Type = ident
			}
		case css.DimensionToken, css.NumberToken:
			if depth > 0 {
				v, _ := parseDimension(string(t.Data))
				feature.Value = int(v)
			}
		}
	}
	return mq, true
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var rules []Rule

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginRulesetGrammar:
			rules = append(rules, p.parseRuleset(parser, data)...)

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "nested at-rule: "+string(data))
			p.skipAtRuleBlock(parser)
		}
	}
}
