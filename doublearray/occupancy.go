package doublearray

import (
	"strings"

	"github.com/hideo55/go-popcount"
)

// occupancy is a bitmap of used slots, one bit per slot.
type occupancy []uint64

func newOccupancy(size int) occupancy {
	return make(occupancy, (size+63)>>6)
}

func (occ occupancy) set(i int) {
	occ[i>>6] |= 1 << (i & 0x3F)
}

func (occ occupancy) has(i int) bool {
	if i>>6 >= len(occ) {
		return false
	}

	return (occ[i>>6]>>(i&0x3F))&0x01 != 0
}

func (occ occupancy) count() int {
	var cnt uint64

	for _, bmp := range occ {
		cnt += popcount.Count(bmp)
	}

	return int(cnt)
}

// render draws the bitmap as rows of '#' (used) and '.' (free).
func (occ occupancy) render(size, width int) string {
	var b strings.Builder

	for i := 0; i < size; i++ {
		if i > 0 && i%width == 0 {
			b.WriteByte('\n')
		}

		if occ.has(i) {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}

	return b.String()
}

func (s *Store) occupancy() occupancy {
	var occ = newOccupancy(len(s.check))

	for i, check := range s.check {
		if check >= 0 {
			occ.set(i)
		}
	}

	return occ
}
