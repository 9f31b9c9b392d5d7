package pow

import (
	"crypto/sha512"
	"encoding/binary"
	"sort"
)

// MemoryWordsV1 is the number of 64-bit words (= 768 KiB) in the v1 proof
// of work's scratch array.
const MemoryWordsV1 = 98304

// speckRoundsV1 is the reduced round count for the Speck128 instance used
// by the v1 mixing loop. Full Speck128/128 runs 32 rounds; a reduced-round
// variant is used here so no ISA has a large advantage over another.
const speckRoundsV1 = 24

// acceptModulusV1 is the divisor used by the v1 acceptance predicate. It
// was picked to yield roughly a 1-2 second PoW on a contemporary core.
const acceptModulusV1 = 180

// HashV1 evaluates the v1 proof-of-work predicate over p, using scratch as
// working memory. scratch must have length MemoryWordsV1; its contents are
// fully overwritten.
func HashV1(p []byte, scratch []uint64) bool {
	if len(scratch) != MemoryWordsV1 {
		panic("pow: hash v1 scratch must be MemoryWordsV1 words")
	}

	seed := sha512.Sum512(p)
	for i := 0; i < 8; i++ {
		scratch[i] = binary.LittleEndian.Uint64(seed[i*8 : i*8+8])
	}

	s := newSpeck128(scratch[4], scratch[5], speckRoundsV1)

	for i := 0; i < MemoryWordsV1-8; {
		x0, y0 := scratch[i], scratch[i+1]
		x1, y1 := scratch[i+2], scratch[i+3]
		x2, y2 := scratch[i+4], scratch[i+5]
		x3, y3 := scratch[i+6], scratch[i+7]

		i += 8

		x0 += x1
		x1 += x2
		x2 += x3
		x3 += y0

		x0, y0, x1, y1, x2, y2, x3, y3 = s.encrypt4(x0, y0, x1, y1, x2, y2, x3, y3)

		scratch[i] = x0
		scratch[i+1] = y0
		scratch[i+2] = x1
		scratch[i+3] = y1
		scratch[i+4] = x2
		scratch[i+5] = y2
		scratch[i+6] = x3
		scratch[i+7] = y3
	}

	sort.Slice(scratch, func(a, b int) bool { return scratch[a] < scratch[b] })

	buf := make([]byte, MemoryWordsV1*8+len(p))
	for i, w := range scratch {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], w)
	}
	copy(buf[MemoryWordsV1*8:], p)

	final := sha512.Sum384(buf)
	z0 := binary.LittleEndian.Uint64(final[0:8])
	z1 := binary.LittleEndian.Uint64(final[8:16])

	return (z0+z1)%acceptModulusV1 == 0
}
