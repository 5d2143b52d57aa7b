package price_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/lifeinvader-ads/pkg/price"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "ten million", raw: "10000000", want: "$10 Million."},
		{name: "fractional millions kept", raw: "4500000", want: "$4.5 Million."},
		{name: "exactly one million", raw: "1000000", want: "$1 Million."},
		{name: "thousands grouped with periods", raw: "12000", want: "$12.000"},
		{name: "six digit thousands", raw: "250000", want: "$250.000"},
		{name: "exactly one thousand", raw: "1000", want: "$1.000"},
		{name: "currency noise stripped", raw: "$12,000", want: "$12.000"},
		{name: "fraction after grouping", raw: "12000.50", want: "$12.000,5"},
		{name: "small", raw: "500", want: "$500"},
		{name: "small with cents", raw: "9.99", want: "$9.99"},
		{name: "zero", raw: "0", want: "$0"},
		{name: "not a number", raw: "abc", want: "abc"},
		{name: "empty", raw: "", want: ""},
		{name: "two decimal points", raw: "1.2.3", want: "1.2.3"},
		{name: "negotiable", raw: "Negotiable", want: "Negotiable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, price.Format(tt.raw))
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "m suffix", text: "selling for 4.5m", want: "4500000", wantOK: true},
		{name: "dollar with commas", text: "Price: $12,000", want: "12000", wantOK: true},
		{name: "word multiplier", text: "asking 3 million", want: "3000000", wantOK: true},
		{name: "k suffix", text: "250k obo", want: "250000", wantOK: true},
		{name: "upper case suffix", text: "Tahoe 1.2M", want: "1200000", wantOK: true},
		{name: "period grouping", text: "$12.000 firm", want: "12000", wantOK: true},
		{name: "multiple periods", text: "only 1.200.000", want: "1200000", wantOK: true},
		{name: "small bare number skipped", text: "2 cars for $500", want: "500", wantOK: true},
		{name: "bare number", text: "Selling 2 cars 15000", want: "15000", wantOK: true},
		{name: "signed price wins over bare", text: "15000 miles, $9000", want: "9000", wantOK: true},
		{name: "no price", text: "no price here", want: "", wantOK: false},
		{name: "only small numbers", text: "5 bedrooms 2 baths", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := price.Extract(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_FeedsFormat(t *testing.T) {
	t.Parallel()

	raw, ok := price.Extract("selling for 4.5m")
	assert.True(t, ok)
	assert.Equal(t, "$4.5 Million.", price.Format(raw))
}
