// Functions and methods are not thread safe.

package malloc

import "errors"
import "fmt"

import "golang.org/x/sys/unix"

// ErrorOutofMemory panic value when OS fails to map a new memory
// block. Treated as fatal, smaller allocations are not attempted.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// ErrorAllocOverflow panic value when the byte size of an allocation
// request overflows address-width arithmetic.
var ErrorAllocOverflow = errors.New("malloc.allocoverflow")

// osmalloc map `size` bytes of memory from OS, outside of the Go
// heap. Buffer shall be released with osfree.
func osmalloc(size int64) []byte {
	buf, err := unix.Mmap(
		-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		panic(ErrorOutofMemory)
	}
	return buf
}

// osfree release a buffer mapped by osmalloc back to OS.
func osfree(buf []byte) {
	if err := unix.Munmap(buf); err != nil {
		panicerr("munmap failed: %v", err)
	}
}

func maxint64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

var poisonblkinit = make([]byte, 1024)

func init() {
	for i := 0; i < len(poisonblkinit); i++ {
		poisonblkinit[i] = 0xff
	}
}
