package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
)

// An eraRule pairs a pattern with a function turning its match into a
// decade label ("1980s"). Rules are tried in order; the first hit wins.
type eraRule struct {
	pattern *regexp.Regexp
	extract func(match []string) string
}

var eraRules = []eraRule{
	// Full decade mention: "1980s", "2010s"
	{
		pattern: regexp.MustCompile(`\b((?:19|20)\d0)s\b`),
		extract: func(match []string) string {
			return match[1] + "s"
		},
	},
	// Short decade mention: "80s", "90s", "00s"
	{
		pattern: regexp.MustCompile(`\b(\d0)s\b`),
		extract: func(match []string) string {
			n, _ := strconv.Atoi(match[1])
			if n < 30 {
				return fmt.Sprintf("%ds", 2000+n)
			}
			return fmt.Sprintf("%ds", 1900+n)
		},
	},
	// Localized phrasing: "años 1980", "año 1985"
	{
		pattern: regexp.MustCompile(`\baños?\s+((?:19|20)\d{2})\b`),
		extract: func(match []string) string {
			return decadeOfYear(match[1])
		},
	},
	// Bare year: "1985", "2007"
	{
		pattern: regexp.MustCompile(`\b((?:19|20)\d{2})\b`),
		extract: func(match []string) string {
			return decadeOfYear(match[1])
		},
	},
}

// decadeOfYear maps "1985" to "1980s".
func decadeOfYear(year string) string {
	y, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%ds", y/10*10)
}

// detectEra returns the decade label mentioned in the query, or "" when
// no rule matches. The query must already be lowercased.
func detectEra(query string) string {
	for _, rule := range eraRules {
		if match := rule.pattern.FindStringSubmatch(query); match != nil {
			return rule.extract(match)
		}
	}
	return ""
}
