//go:build debug

package malloc

// validalign crash early if `align` is not a power of 2. Only debug
// builds pay for the check, the optimized allocation path carries no
// branch for it.
func validalign(align int64) {
	if align <= 0 || (align&(align-1)) != 0 {
		panicerr("align %v is not a power of 2", align)
	}
}

// poisonblock scribble 0xff over a recycled block so that stale
// reads surface quickly.
func poisonblock(block []byte) {
	for i := 0; i < len(block); i += len(poisonblkinit) {
		copy(block[i:], poisonblkinit)
	}
}
