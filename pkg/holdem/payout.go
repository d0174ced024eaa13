package holdem

// SplitPot divides pot into n shares
// Any remainder is handed out one unit at a time starting with the first share, so the
// shares always add up to pot.
func SplitPot(pot, n int) []int {
	if n <= 0 {
		return nil
	}

	shares := make([]int, n)
	base := pot / n
	remainder := pot % n
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}

	return shares
}
