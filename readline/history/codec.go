package history

import (
	"encoding/binary"
	"errors"
	"math"
)

// Serialized layout, little-endian throughout:
//
//	uint32 magic "RLH\x01"
//	uint8  version
//	uint32 entry count
//	count times: uint32 length, length bytes of UTF-8
const (
	magic      uint32 = 0x524c4801
	headerSize        = 9
)

// Version is the codec version produced by Encode.
const Version uint8 = 1

// Errors returned when decoding a persisted history buffer.
var (
	ErrBadMagic       = errors.New("history: invalid magic")
	ErrBadVersion     = errors.New("history: unsupported version")
	ErrTruncated      = errors.New("history: truncated entry")
	ErrTooLarge       = errors.New("history: entry count exceeds buffer")
	ErrEncodeTooLarge = errors.New("history: store too large to encode")
)

// Encode serializes the store's entries into an opaque buffer suitable for
// Decode. Navigation state is not included.
func (s *Store) Encode() ([]byte, error) {
	if len(s.entries) > math.MaxUint32 {
		return nil, ErrEncodeTooLarge
	}

	size := headerSize
	for _, e := range s.entries {
		if len(e) > math.MaxUint32 {
			return nil, ErrEncodeTooLarge
		}
		size += 4 + len(e)
	}

	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	buf[4] = Version
	binary.LittleEndian.PutUint32(buf[5:9], uint32(len(s.entries)))

	off := headerSize
	for _, e := range s.entries {
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(len(e)))
		off += 4
		copy(buf[off:], e)
		off += len(e)
	}
	return buf, nil
}

// Decode restores the store from a buffer produced by Encode, replacing the
// current contents. On any structural error the store is left untouched.
func (s *Store) Decode(buf []byte) error {
	entries, err := parse(buf)
	if err != nil {
		return err
	}
	s.replace(entries)
	return nil
}

// parse validates and extracts the entry list without mutating anything.
func parse(buf []byte) ([]string, error) {
	if len(buf) < headerSize {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if buf[4] != Version {
		return nil, ErrBadVersion
	}

	count := binary.LittleEndian.Uint32(buf[5:9])
	// Each entry needs at least its length field.
	if uint64(count)*4 > uint64(len(buf)-headerSize) {
		return nil, ErrTooLarge
	}

	entries := make([]string, 0, count)
	off := headerSize
	for i := uint32(0); i < count; i++ {
		if off+4 > len(buf) {
			return nil, ErrTruncated
		}
		n := int(binary.LittleEndian.Uint32(buf[off : off+4]))
		off += 4
		if n < 0 || off+n > len(buf) {
			return nil, ErrTruncated
		}
		entries = append(entries, string(buf[off:off+n]))
		off += n
	}
	return entries, nil
}
