// Package countries holds the static country -> retailer configuration.
// The table is loaded once at init and never mutated afterwards.
package countries

import "strings"

// Config describes one supported country.
type Config struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Currency string   `json:"currency"`
	Websites []string `json:"websites"`
}

const defaultCode = "US"

var table = map[string]Config{
	"US": {
		Code:     "US",
		Name:     "United States",
		Currency: "USD",
		Websites: []string{"amazon", "bestbuy", "walmart", "target", "newegg"},
	},
	"IN": {
		Code:     "IN",
		Name:     "India",
		Currency: "INR",
		Websites: []string{"amazon", "flipkart", "croma", "reliance"},
	},
	"UK": {
		Code:     "UK",
		Name:     "United Kingdom",
		Currency: "GBP",
		Websites: []string{"amazon", "argos", "currys", "johnlewis"},
	},
	"CA": {
		Code:     "CA",
		Name:     "Canada",
		Currency: "CAD",
		Websites: []string{"amazon", "bestbuy", "walmart", "thesource"},
	},
	"AU": {
		Code:     "AU",
		Name:     "Australia",
		Currency: "AUD",
		Websites: []string{"amazon", "jbhifi", "kogan", "harveynorman"},
	},
	"DE": {
		Code:     "DE",
		Name:     "Germany",
		Currency: "EUR",
		Websites: []string{"amazon", "saturn", "mediamarkt", "otto"},
	},
}

// Get looks up a country by code, case-insensitively.
func Get(code string) (Config, bool) {
	c, ok := table[strings.ToUpper(code)]
	return c, ok
}

// WebsitesFor returns the ordered retailer list for a country code.
// Unknown codes fall back to the US list.
func WebsitesFor(code string) []string {
	c, ok := Get(code)
	if !ok {
		c = table[defaultCode]
	}
	out := make([]string, len(c.Websites))
	copy(out, c.Websites)
	return out
}

// All returns a copy of the full country table.
func All() map[string]Config {
	out := make(map[string]Config, len(table))
	for code, c := range table {
		websites := make([]string, len(c.Websites))
		copy(websites, c.Websites)
		c.Websites = websites
		out[code] = c
	}
	return out
}
