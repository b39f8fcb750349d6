package malloc

import s "github.com/bnclabs/gosettings"

// Alignment for chunks returned by Allocbytes, and for every chunk
// whose caller does not demand a stricter alignment.
const Alignment = int64(8)

// Blocksize default size for arena memory blocks. Can be used as
// default for config-parameter `blocksize`.
const Blocksize = int64(1024)

// Maxblocksize maximum size of a single memory block.
const Maxblocksize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Finchunksize number of finalizers batched in a single registry
// chunk. Registry chunks are carved out of arena memory itself.
const Finchunksize = 32

// Malloc configurable parameters and default settings.
//
// "blocksize" (int64, default: Blocksize)
//		Size of the arena's initial memory block and the minimum
//		size of every growth block.
func Defaultsettings() s.Settings {
	return s.Settings{
		"blocksize": Blocksize,
	}
}
