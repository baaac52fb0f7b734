package services

// CalculateScore derives the admission score from the yearly bachelor
// marks. A missing mark counts as zero. The third year weighs double
// and the first year adds a one-third bonus on top of itself; the
// second-year mark is stored on the profile but does not enter the
// formula.
func CalculateScore(first, second, third *float64) float64 {
	f := markValue(first)
	t := markValue(third)
	return t*2 + f + f/3
}

func markValue(mark *float64) float64 {
	if mark == nil {
		return 0
	}
	return *mark
}
