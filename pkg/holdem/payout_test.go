package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPot(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{34, 33, 33}, SplitPot(100, 3))
	a.Equal([]int{50, 50}, SplitPot(100, 2))
	a.Equal([]int{2, 2, 1, 1}, SplitPot(6, 4))
	a.Equal([]int{1, 0, 0}, SplitPot(1, 3))
	a.Equal([]int{0, 0}, SplitPot(0, 2))
	a.Nil(SplitPot(100, 0))

	for pot := 0; pot < 50; pot++ {
		for n := 1; n <= 8; n++ {
			total := 0
			for _, share := range SplitPot(pot, n) {
				total += share
			}
			a.Equal(pot, total)
		}
	}
}
