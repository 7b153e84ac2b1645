package validators

// ValidWeekdays checks that every entry is a weekday number "0".."6"
// (0 = Sunday) with no duplicates.
func ValidWeekdays(days []string) bool {
	seen := map[string]bool{}
	for _, d := range days {
		if len(d) != 1 || d[0] < '0' || d[0] > '6' {
			return false
		}
		if seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
