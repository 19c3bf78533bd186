// Package search filters favorites with a small query language:
// field:value terms, bare words, quoted phrases, NOT, AND and OR.
package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType is the favorite attribute a condition looks at
type FieldType string

const (
	FieldWebsite FieldType = "type"
	FieldTone    FieldType = "tone"
	FieldStyle   FieldType = "style"
	FieldFeature FieldType = "feature"
	FieldName    FieldType = "name"
	FieldText    FieldType = "text" // name or description
)

// Operator represents a search operator
type Operator string

const (
	OperatorContains Operator = "contains"
	OperatorAND      Operator = "AND"
	OperatorOR       Operator = "OR"
)

// Condition represents a single search condition
type Condition struct {
	Field    FieldType
	Operator Operator
	Value    string
	Negate   bool
}

// Query represents a parsed search query
type Query struct {
	Conditions []Condition
	Logic      []Operator // between consecutive conditions
	Raw        string
}

// Parser handles parsing of search queries
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a search query string into a Query
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}
	if err := p.parseTokens(p.tokenize(input), query); err != nil {
		return nil, err
	}
	return query, nil
}

// tokenize splits on spaces outside double quotes
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

func (p *Parser) parseTokens(tokens []string, query *Query) error {
	negateNext := false
	explicit := false

	for _, token := range tokens {
		switch strings.ToUpper(token) {
		case "AND", "OR":
			if len(query.Conditions) == 0 || explicit {
				return fmt.Errorf("unexpected operator %s", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			explicit = true
			continue
		case "NOT":
			if negateNext {
				return fmt.Errorf("NOT operator requires a condition")
			}
			negateNext = true
			continue
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return err
		}
		cond.Negate = negateNext
		negateNext = false

		// Juxtaposed terms are ANDed
		if len(query.Conditions) > 0 && !explicit {
			query.Logic = append(query.Logic, OperatorAND)
		}
		explicit = false
		query.Conditions = append(query.Conditions, cond)
	}

	if negateNext {
		return fmt.Errorf("NOT operator requires a condition")
	}
	if explicit {
		return fmt.Errorf("query ends with an operator")
	}
	return nil
}

func (p *Parser) parseCondition(token string) (Condition, error) {
	matches := p.fieldPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return Condition{Field: FieldText, Operator: OperatorContains, Value: p.unquote(token)}, nil
	}

	value := p.unquote(matches[2])
	switch strings.ToLower(matches[1]) {
	case "type":
		return Condition{Field: FieldWebsite, Operator: OperatorContains, Value: value}, nil
	case "tone":
		return Condition{Field: FieldTone, Operator: OperatorContains, Value: value}, nil
	case "style":
		return Condition{Field: FieldStyle, Operator: OperatorContains, Value: value}, nil
	case "feature", "has":
		return Condition{Field: FieldFeature, Operator: OperatorContains, Value: value}, nil
	case "name":
		return Condition{Field: FieldName, Operator: OperatorContains, Value: value}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s (use type, tone, style, feature or name)", matches[1])
	}
}

// unquote removes quotes from a string if present
func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
