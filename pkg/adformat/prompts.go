package adformat

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/donaldgifford/lifeinvader-ads/pkg/canonical"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

const (
	defaultMaxTokens   = 256
	defaultTemperature = 0.2
)

// systemMsg frames every generation request.
const systemMsg = `You are the LifeInvader ad editor. You rewrite player ads so they follow the
posting policy exactly. You never invent details that are not in the ad.`

// policyText is the posting policy given to the backend.
const policyText = `- Write in English, in full sentences, starting each sentence with a capital letter.
- Vehicles: Selling "<Official Vehicle Name>". Features. Price: $X.
- Businesses and property: Selling <Business Type> in <Location>. Features. Price: $X.
- Services: Offering <Service> Services. Details. Price: $X.
- Clothing: use the official brand name and describe the condition.
- Jobs: Hiring <Role>. Details. Salary: $X.
- Prices: $12.000 for thousands, $4.5 Million. for millions, Negotiable when missing.
- No phone numbers, links, slurs or all-caps words. End with a period.`

const formatTmpl = `Format this LifeInvader ad.

Policy:
{{.Policy}}

Official categories: {{join .Categories ", "}}

Official vehicle names:
{{join .Vehicles "\n"}}

Official clothing brands:
{{join .ClothingBrands "\n"}}
{{if .Corrections}}
Previous corrections by editors (follow the same style):
{{range .Corrections}}- Input: {{.OriginalInput}}
  Corrected: {{.UserCorrection}}
{{end}}{{end}}
Ad: {{.Input}}

Respond with exactly two lines:
<formatted ad>
Category: <one official category>`

var promptTemplate = template.Must(
	template.New("format").Funcs(template.FuncMap{"join": strings.Join}).Parse(formatTmpl),
)

type promptData struct {
	Policy         string
	Categories     []string
	Vehicles       []string
	ClothingBrands []string
	Corrections    []domain.FeedbackEntry
	Input          string
}

// RenderPrompt builds the formatting prompt for input with the given prior
// corrections, at most MaxFeedbackContext of which are used.
func RenderPrompt(input string, corrections []domain.FeedbackEntry) (string, error) {
	if len(corrections) > MaxFeedbackContext {
		corrections = corrections[:MaxFeedbackContext]
	}

	cats := domain.Categories()
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = string(c)
	}

	var buf bytes.Buffer
	err := promptTemplate.Execute(&buf, promptData{
		Policy:         policyText,
		Categories:     keys,
		Vehicles:       canonical.VehicleNames(),
		ClothingBrands: canonical.ClothingBrandNames(),
		Corrections:    corrections,
		Input:          strings.TrimSpace(input),
	})
	if err != nil {
		return "", fmt.Errorf("executing format template: %w", err)
	}
	return buf.String(), nil
}
