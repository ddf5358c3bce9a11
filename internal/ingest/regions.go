package ingest

import "strings"

// regionPrefixes are administrative qualifiers printed before some place
// names in the reports ("Dist-Raigad", "Tal-Khed").
var regionPrefixes = []string{"Dist-", "Dist.", "Dist ", "Tal-", "Tal.", "District "}

// RegionFromCollegeName derives a college's region from the trailing token
// of its name: "Government College of Engineering, Amravati" → "Amravati".
// Returns an empty string when the name carries no location suffix.
func RegionFromCollegeName(name string) string {
	idx := strings.LastIndex(name, ",")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}

	region := strings.TrimSpace(name[idx+1:])
	region = strings.TrimSuffix(region, ".")

	for _, prefix := range regionPrefixes {
		if strings.HasPrefix(region, prefix) {
			region = strings.TrimSpace(region[len(prefix):])
			break
		}
	}

	if region == "" || !startsWithLetter(region) {
		return ""
	}

	return region
}

func startsWithLetter(s string) bool {
	c := s[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
