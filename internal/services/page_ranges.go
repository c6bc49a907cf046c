package services

import (
	"regexp"
	"strconv"
	"strings"
)

// MushafPageCount bounds parsed page numbers; entries outside 1..604 are
// ignored rather than rejected.
const MushafPageCount = 604

var pageRangePattern = regexp.MustCompile(`^[\d\s,\-]*$`)

// ValidPageRangeString accepts the "1-3, 5" grammar: digits, commas,
// hyphens, and spaces only. Empty strings are valid.
func ValidPageRangeString(value string) bool {
	return pageRangePattern.MatchString(value)
}

// ParsePageSet expands a page-range string into the set of page numbers it
// covers. Malformed parts are skipped, matching the forgiving source format.
func ParsePageSet(value string) map[int]struct{} {
	pages := make(map[int]struct{})
	if strings.TrimSpace(value) == "" {
		return pages
	}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := splitRangePart(part); ok {
			for page := start; page <= end; page++ {
				addPage(pages, page)
			}
			continue
		}

		if page, err := strconv.Atoi(part); err == nil {
			addPage(pages, page)
		}
	}
	return pages
}

func splitRangePart(part string) (int, int, bool) {
	separator := strings.IndexByte(part, '-')
	if separator < 0 {
		return 0, 0, false
	}

	start, startErr := strconv.Atoi(strings.TrimSpace(part[:separator]))
	end, endErr := strconv.Atoi(strings.TrimSpace(part[separator+1:]))
	if startErr != nil || endErr != nil || end < start {
		return 0, 0, false
	}
	if end > MushafPageCount {
		end = MushafPageCount
	}
	return start, end, true
}

func addPage(pages map[int]struct{}, page int) {
	if page < 1 || page > MushafPageCount {
		return
	}
	pages[page] = struct{}{}
}
