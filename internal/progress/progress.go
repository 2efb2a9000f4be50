// Package progress computes completion percentages for stages and roadmaps.
package progress

// Percent returns the truncated integer percentage of done over total.
// A zero total yields 0: an empty stage is 0% complete, not undefined.
// Truncation is intentional, 1 of 3 done reports 33 rather than 34.
func Percent(done, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(done * 100 / total)
}
