package feed

import (
	"regexp"
	"time"

	"github.com/mmcdole/gofeed"
)

// publication date phrases some publishers bury in the description field
// instead of a proper date element, e.g. "Publication date: 26 April 2025"
var (
	rePublicationDate = regexp.MustCompile(`Publication date:\s*(\d+\s+\w+\s+\d{4})`)
	reAvailableOnline = regexp.MustCompile(`Available online\s*(\d+\s+\w+\s+\d{4})`)
)

const descDateLayout = "2 January 2006"

// ResolveDate extracts the authoritative publication time of a feed entry,
// anchored to loc. It tries the parsed published field, then the parsed
// updated field, then a scan of the raw description for a day-month-year
// phrase parsed at midnight in loc. Returns zero time when nothing
// resolves; an unparseable strategy falls through to the next one.
func ResolveDate(item *gofeed.Item, loc *time.Location) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.In(loc)
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.In(loc)
	}

	for _, re := range []*regexp.Regexp{rePublicationDate, reAvailableOnline} {
		m := re.FindStringSubmatch(item.Description)
		if m == nil {
			continue
		}
		t, err := time.ParseInLocation(descDateLayout, m[1], loc)
		if err != nil {
			continue // malformed phrase, try the next pattern
		}
		return t
	}

	return time.Time{}
}
