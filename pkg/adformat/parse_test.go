package adformat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func TestParseResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		input        string
		wantText     string
		wantCategory domain.Category
		wantErr      error
	}{
		{
			name:         "two line reply",
			content:      "Selling \"Pegassi Zentorno\". Price: $1.5 Million.\nCategory: auto",
			input:        "zentorno 1.5m",
			wantText:     "Selling \"Pegassi Zentorno\". Price: $1.5 Million.",
			wantCategory: domain.CategoryAuto,
		},
		{
			name:         "category first with blank lines",
			content:      "\nCategory: House.\n\n  selling house in rockford hills  \n",
			input:        "house",
			wantText:     "Selling house in rockford hills.",
			wantCategory: domain.CategoryHouse,
		},
		{
			name:         "unknown category falls back to detection",
			content:      "Offering Taxi Services. Price: $500.\nCategory: transport",
			input:        "taxi rides 500",
			wantText:     "Offering Taxi Services. Price: $500.",
			wantCategory: domain.CategoryServices,
		},
		{
			name:         "missing category line",
			content:      "Hiring Chef. Salary: $2.000.",
			input:        "hiring chef salary 2000",
			wantText:     "Hiring Chef. Salary: $2.000.",
			wantCategory: domain.CategoryOffice,
		},
		{
			name:         "wrapped in backticks",
			content:      "`Selling Item. Price: Negotiable.`\nCategory: `other`",
			input:        "stuff",
			wantText:     "Selling Item. Price: Negotiable.",
			wantCategory: domain.CategoryOther,
		},
		{
			name:    "only a category",
			content: "Category: auto",
			input:   "car",
			wantErr: adformat.ErrEmptyResponse,
		},
		{
			name:    "punctuation only",
			content: "...\n",
			input:   "car",
			wantErr: adformat.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ad, err := adformat.ParseResponse(tt.content, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, ad.Text)
			assert.Equal(t, tt.wantCategory, ad.Category)
			assert.Equal(t, domain.SourceAI, ad.Source)
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &adformat.ParseError{Backend: "ollama", Err: adformat.ErrEmptyResponse}
	assert.Contains(t, err.Error(), "ollama")
	assert.True(t, errors.Is(err, adformat.ErrEmptyResponse))
}

func TestPolish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "   ", want: ""},
		{name: "adds period", in: "selling car", want: "Selling car."},
		{name: "capitalizes sentences", in: "selling car. great deal! call now?", want: "Selling car. Great deal! Call now?"},
		{name: "collapses whitespace", in: "selling   big\n house", want: "Selling big house."},
		{name: "keeps decimals", in: "price: $4.5 million", want: "Price: $4.5 million."},
		{name: "keeps grouped thousands", in: "price: $12.000", want: "Price: $12.000."},
		{name: "trailing separator", in: "selling car,", want: "Selling car."},
		{name: "quoted name", in: "\"banshee\" for sale", want: "\"Banshee\" for sale."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, adformat.Polish(tt.in))
		})
	}
}
