package dropdown

import (
	"bytes"
	"strings"

	"github.com/glazier-ui/glazier/internal/logging"
)

// PosLast appends an option after all existing ones.
const PosLast = -1

const optionSeparator = byte('\n')

type storageTag int

const (
	// storageBorrowed adopts the caller's string without copying; the
	// buffer is read-only until a mutating call converts it.
	storageBorrowed storageTag = iota
	// storageOwned holds a private, growable copy.
	storageOwned
)

// optionStore keeps every option label in one separator-delimited buffer.
// The separator is '\n'; it is ASCII, so byte offsets never split a UTF-8
// sequence.
type optionStore struct {
	tag      storageTag
	borrowed string
	owned    []byte
	present  bool
	count    int
}

func countSegments(text string) int {
	return strings.Count(text, "\n") + 1
}

// clear releases any owned buffer and resets the count. No-op when empty.
func (s *optionStore) clear() {
	if !s.present {
		return
	}
	s.tag = storageOwned
	s.borrowed = ""
	s.owned = nil
	s.present = false
	s.count = 0
}

// set replaces the buffer with a private copy of text.
func (s *optionStore) set(text string) {
	s.tag = storageOwned
	s.borrowed = ""
	s.owned = []byte(text)
	s.present = true
	s.count = countSegments(text)
}

// setStatic adopts the caller's string without copying.
func (s *optionStore) setStatic(text string) {
	s.tag = storageBorrowed
	s.borrowed = text
	s.owned = nil
	s.present = true
	s.count = countSegments(text)
}

func (s *optionStore) text() string {
	if !s.present {
		return ""
	}
	if s.tag == storageBorrowed {
		return s.borrowed
	}
	return string(s.owned)
}

// toOwned converts a borrowed buffer to an owned copy before mutation.
func (s *optionStore) toOwned() {
	if s.tag == storageOwned {
		return
	}
	s.owned = []byte(s.borrowed)
	s.borrowed = ""
	s.tag = storageOwned
}

// separatorOffset returns the byte offset where the pos-th segment starts.
// pos at or past the current count maps to the end of the buffer.
func (s *optionStore) separatorOffset(pos int) int {
	if pos == PosLast || pos >= s.count {
		return len(s.owned)
	}
	seen := 0
	for i := 0; i < len(s.owned); i++ {
		if seen == pos {
			return i
		}
		if s.owned[i] == optionSeparator {
			seen++
		}
	}
	return len(s.owned)
}

// insert places option as the pos-th segment, shifting later segments up by
// one. PosLast (or any pos past the end) appends.
func (s *optionStore) insert(option string, pos int) {
	s.toOwned()
	if !s.present {
		s.present = true
	}

	appending := pos == PosLast || pos >= s.count
	offset := s.separatorOffset(pos)

	// Appending after existing content needs a separator in front of the
	// new segment; inserting before a segment needs one after it.
	var ins []byte
	if appending && len(s.owned) > 0 {
		ins = append(ins, optionSeparator)
	}
	ins = append(ins, option...)
	if !appending {
		ins = append(ins, optionSeparator)
	}

	var buf bytes.Buffer
	buf.Grow(len(s.owned) + len(ins))
	buf.Write(s.owned[:offset])
	buf.Write(ins)
	buf.Write(s.owned[offset:])
	s.owned = buf.Bytes()
	s.count++
}

// segment returns the idx-th option label. The empty store yields "" for
// every index; out-of-range indexes also yield "".
func (s *optionStore) segment(idx int) string {
	if !s.present || idx < 0 {
		return ""
	}
	text := s.text()
	for ; idx > 0; idx-- {
		i := strings.IndexByte(text, optionSeparator)
		if i < 0 {
			return ""
		}
		text = text[i+1:]
	}
	if i := strings.IndexByte(text, optionSeparator); i >= 0 {
		text = text[:i]
	}
	return text
}

// copySegment writes the idx-th option label into dst, truncating with a
// logged warning when dst is too small. Returns the number of bytes
// written; nothing past len(dst) is ever touched.
func (s *optionStore) copySegment(dst []byte, idx int) int {
	seg := s.segment(idx)
	n := copy(dst, seg)
	if n < len(seg) {
		logging.Warn("selected option %q truncated to %d bytes", seg, n)
	}
	return n
}
