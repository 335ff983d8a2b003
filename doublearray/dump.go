package doublearray

import (
	"fmt"
	"strconv"
	"strings"
)

const dumpRowWidth = 64

// Dump renders the arrays for debugging. The format is not stable.
func (s *Store) Dump() string {
	var (
		b    strings.Builder
		size = s.Size()
	)

	b.WriteString("base:")
	for i := 0; i < size; i++ {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(s.Base(int32(i))), 10))
	}

	b.WriteString("\ncheck:")
	for i := 0; i < size; i++ {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(s.Check(int32(i))), 10))
	}

	st := s.Calc()

	fmt.Fprintf(&b, "\nsize: %d, unused: %d, efficiency: %.3f, first free: %d\n",
		st.All, st.Unused, st.Efficiency, s.firstFree)

	b.WriteString(s.occupancy().render(len(s.check), dumpRowWidth))
	b.WriteByte('\n')

	return b.String()
}

// String returns a one-line summary of the store.
func (s *Store) String() string {
	st := s.Calc()

	return fmt.Sprintf("<doublearray|size:%d|unused:%d|eff:%.3f>", st.All, st.Unused, st.Efficiency)
}
