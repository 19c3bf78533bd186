package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Condition
		logic    []Operator
		wantErr  bool
	}{
		{
			name:     "bare word",
			input:    "bakery",
			expected: []Condition{{Field: FieldText, Operator: OperatorContains, Value: "bakery"}},
		},
		{
			name:     "field with quoted value",
			input:    `tone:"Playful & Fun"`,
			expected: []Condition{{Field: FieldTone, Operator: OperatorContains, Value: "Playful & Fun"}},
		},
		{
			name:  "implicit and",
			input: "type:restaurant has:menu",
			expected: []Condition{
				{Field: FieldWebsite, Operator: OperatorContains, Value: "restaurant"},
				{Field: FieldFeature, Operator: OperatorContains, Value: "menu"},
			},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "not and or",
			input: "NOT style:dark OR name:acme",
			expected: []Condition{
				{Field: FieldStyle, Operator: OperatorContains, Value: "dark", Negate: true},
				{Field: FieldName, Operator: OperatorContains, Value: "acme"},
			},
			logic: []Operator{OperatorOR},
		},
		{name: "unknown field", input: "color:red", wantErr: true},
		{name: "dangling not", input: "acme NOT", wantErr: true},
		{name: "leading operator", input: "OR acme", wantErr: true},
		{name: "trailing operator", input: "acme AND", wantErr: true},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parser.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.Conditions)
			assert.Equal(t, tt.logic, q.Logic)
		})
	}
}

func favorites() []models.Favorite {
	return []models.Favorite{
		{ID: "1", WebsiteConfig: models.WebsiteConfig{
			BusinessName: "Acme Bakery", Description: "Fresh bread daily", WebsiteType: "E-commerce",
			Tone: "Friendly & Casual", Style: "Light Mode", Features: []string{"Hero Section", "Product Showcase"},
		}},
		{ID: "2", WebsiteConfig: models.WebsiteConfig{
			BusinessName: "Luigi's", Description: "Wood-fired pizza", WebsiteType: "Restaurant",
			Tone: "Playful & Fun", Style: "Dark Mode", Features: []string{"Menu", "Contact Form"},
		}},
		{ID: "3", WebsiteConfig: models.WebsiteConfig{
			BusinessName: "Jane Doe", Description: "Photography portfolio", WebsiteType: "Portfolio",
			Tone: "Modern & Minimalist", Style: "Dark Mode", Features: []string{"Image Gallery"},
		}},
	}
}

func ids(favs []models.Favorite) []string {
	out := []string{}
	for _, f := range favs {
		out = append(out, f.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"bread", []string{"1"}},
		{"PIZZA", []string{"2"}},
		{"style:dark", []string{"2", "3"}},
		{"style:dark NOT type:restaurant", []string{"3"}},
		{"name:acme OR name:jane", []string{"1", "3"}},
		{`has:"contact form"`, []string{"2"}},
		{"tone:playful AND has:menu", []string{"2"}},
		{"nothing-matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := Filter(favorites(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterNoMatchIsEmptyNotNil(t *testing.T) {
	got, err := Filter(favorites(), "name:nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterInvalidQuery(t *testing.T) {
	_, err := Filter(favorites(), "bogus:value")
	assert.Error(t, err)
}
