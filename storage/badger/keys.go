package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/confsearch/core"
)

// Key prefixes for different record types
const (
	programInfoKey  = "proginfo"
	sessionPrefix   = "progsess"
	sessionIDPrefix = "progsessid"
)

// makeProgramInfoKey generates the key for the single program metadata record.
func makeProgramInfoKey() []byte {
	return []byte(programInfoKey)
}

// makeSessionKey generates a positional key for a session record.
// Format: prefix:dayIndex:sessionIndex, with both indices big-endian so
// lexicographic iteration yields corpus order.
func makeSessionKey(dayIndex, sessionIndex uint32) []byte {
	prefix := sessionPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 4 bytes for day index + 4 bytes for session index
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint32(buf[offset:], dayIndex)
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:], sessionIndex)
	return buf
}

// parseSessionKey extracts the day and session indices from a positional key.
func parseSessionKey(key []byte) (dayIndex, sessionIndex uint32, err error) {
	prefix := sessionPrefix + ":"
	if len(key) != len(prefix)+8 {
		return 0, 0, fmt.Errorf("malformed session key of length %d", len(key))
	}
	body := key[len(prefix):]
	return binary.BigEndian.Uint32(body), binary.BigEndian.Uint32(body[4:]), nil
}

// makeSessionIDKey generates a lookup key for a session by its content ID.
func makeSessionIDKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", sessionIDPrefix, id))
}
