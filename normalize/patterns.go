// Recognition patterns and their replacement handlers.
package normalize

import (
	"regexp"

	"github.com/ldblckrs-258/vixtts-demo/datetext"
	"github.com/ldblckrs-258/vixtts-demo/numtext"
)

var (
	reSpace = regexp.MustCompile(`\s+`)

	// YYYY-MM-DD HH:MM:SS with 1-2 digit month/day/hour/minute/second.
	reDatetime = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2}) (\d{1,2}):(\d{1,2}):(\d{1,2})`)

	// Day-first dates: DD/MM/YYYY and DD-MM-YYYY.
	reSlashDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	reDashDate  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)

	// Year-first residual dates: YYYY-MM-DD once datetimes are consumed.
	reISODate = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)

	// Decimals with comma or dot separator, word-boundary delimited.
	reCommaDecimal = regexp.MustCompile(`\b(\d+),(\d+)\b`)
	reDotDecimal   = regexp.MustCompile(`\b(\d+)\.(\d+)\b`)

	// Any remaining integer run of 1-100 digits.
	reInteger = regexp.MustCompile(`\b\d{1,100}\b`)

	// A digit glued to a following non-digit, non-space character.
	reDigitGlue = regexp.MustCompile(`(\d+)([^\d\s])`)
)

// pass is one pattern-match-and-replace step of the recognition pipeline.
type pass struct {
	re      *regexp.Regexp
	replace func(groups []string) string
}

// apply performs a global search-and-replace of p over s, handing each
// match's capture groups to the handler.
func (p pass) apply(s string) string {
	return p.re.ReplaceAllStringFunc(s, func(m string) string {
		return p.replace(p.re.FindStringSubmatch(m))
	})
}

// passes lists the recognition steps in mandatory priority order:
// datetime, slash date, dash date, year-first date, comma decimal,
// dot decimal, generic integer. Each pass scans the text produced by the
// prior passes, so no numeric span is ever matched twice.
var passes = []pass{
	{reDatetime, func(g []string) string {
		return datetext.ConvertDatetime(g[1], g[2], g[3], g[4], g[5], g[6])
	}},
	{reSlashDate, func(g []string) string {
		return datetext.ConvertDate(g[1], g[2], g[3])
	}},
	{reDashDate, func(g []string) string {
		return datetext.ConvertDate(g[1], g[2], g[3])
	}},
	{reISODate, func(g []string) string {
		return datetext.ConvertDate(g[3], g[2], g[1])
	}},
	{reCommaDecimal, func(g []string) string {
		return numtext.ConvertDecimal(g[1], g[2])
	}},
	{reDotDecimal, func(g []string) string {
		return numtext.ConvertDecimal(g[1], g[2])
	}},
	{reInteger, func(g []string) string {
		return numtext.Convert(g[0])
	}},
}
