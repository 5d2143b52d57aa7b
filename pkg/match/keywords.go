package match

// knownKeywords are lowercase brand and model fragments that show up in ad
// text without the full canonical name. They are tried in order.
var knownKeywords = []string{
	// vehicles
	"skyline",
	"zentorno",
	"infernus",
	"sultan",
	"elegy",
	"kuruma",
	"buffalo",
	"dominator",
	"gauntlet",
	"banshee",
	"comet",
	"adder",
	"entity",
	"turismo",
	"sentinel",
	"schafter",
	"baller",
	"granger",
	"patriot",
	"sanchez",
	"akuma",
	"bati",
	"tahoe",
	"gt-r",
	"gtr",
	"t20",
	// clothing brands
	"ponsonbys",
	"sub urban",
	"suburban",
	"binco",
	"didier sachs",
	"perseus",
	"bigness",
	"guffy",
	"sessanta nove",
	"prolaps",
	"blagueurs",
	"enema",
}

// KnownKeywords returns a copy of the keyword table used by the keyword stage
// of ExtractCanonicalName.
func KnownKeywords() []string {
	out := make([]string, len(knownKeywords))
	copy(out, knownKeywords)
	return out
}
