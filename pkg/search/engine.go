package search

import (
	"strings"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// Filter returns the favorites matching query, keeping their order. An
// empty query matches everything; no match is an empty, non-nil slice.
func Filter(favorites []models.Favorite, query string) ([]models.Favorite, error) {
	if strings.TrimSpace(query) == "" {
		if favorites == nil {
			return []models.Favorite{}, nil
		}
		return favorites, nil
	}
	q, err := NewParser().Parse(query)
	if err != nil {
		return nil, err
	}

	out := []models.Favorite{}
	for _, fav := range favorites {
		if q.Matches(fav) {
			out = append(out, fav)
		}
	}
	return out, nil
}

// Matches evaluates the conditions left to right; AND and OR have equal
// precedence
func (q *Query) Matches(fav models.Favorite) bool {
	if len(q.Conditions) == 0 {
		return true
	}

	result := q.Conditions[0].matches(fav)
	for i, op := range q.Logic {
		next := q.Conditions[i+1].matches(fav)
		if op == OperatorOR {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

func (c Condition) matches(fav models.Favorite) bool {
	var hit bool
	switch c.Field {
	case FieldWebsite:
		hit = containsFold(fav.WebsiteType, c.Value)
	case FieldTone:
		hit = containsFold(fav.Tone, c.Value)
	case FieldStyle:
		hit = containsFold(fav.Style, c.Value)
	case FieldName:
		hit = containsFold(fav.BusinessName, c.Value)
	case FieldFeature:
		for _, f := range fav.Features {
			if containsFold(f, c.Value) {
				hit = true
				break
			}
		}
	default:
		hit = containsFold(fav.BusinessName, c.Value) || containsFold(fav.Description, c.Value)
	}
	if c.Negate {
		return !hit
	}
	return hit
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
