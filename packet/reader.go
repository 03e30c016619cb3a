// Package packet implements the chat wire format: bit-packed length headers
// followed by byte-aligned strings.
package packet

import (
	"encoding/binary"
	"fmt"

	"world-chat/errors"
)

// Reader consumes a payload. Bits are read most significant first;
// byte reads first discard any partially consumed byte.
type Reader struct {
	buf     []byte
	pos     int
	bitPos  uint8
	curByte byte
}

func NewReader(payload []byte) *Reader {
	return &Reader{buf: payload, bitPos: 8}
}

// ReadBits reads an unsigned value of n bits (n <= 32).
func (r *Reader) ReadBits(n uint8) (uint32, error) {
	var v uint32
	for i := uint8(0); i < n; i++ {
		if r.bitPos == 8 {
			if r.pos >= len(r.buf) {
				return 0, fmt.Errorf("%w: bit header truncated", errors.ErrMalformedMessage)
			}
			r.curByte = r.buf[r.pos]
			r.pos++
			r.bitPos = 0
		}
		bit := (r.curByte >> (7 - r.bitPos)) & 1
		v = v<<1 | uint32(bit)
		r.bitPos++
	}
	return v, nil
}

// FlushBits drops the remainder of a partially read byte.
func (r *Reader) FlushBits() {
	r.bitPos = 8
}

func (r *Reader) ReadUint32() (uint32, error) {
	r.FlushBits()
	if len(r.buf)-r.pos < 4 {
		return 0, fmt.Errorf("%w: uint32 truncated", errors.ErrMalformedMessage)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	r.FlushBits()
	if len(r.buf)-r.pos < 8 {
		return 0, fmt.Errorf("%w: uint64 truncated", errors.ErrMalformedMessage)
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	r.FlushBits()
	if r.pos >= len(r.buf) {
		return 0, fmt.Errorf("%w: uint8 truncated", errors.ErrMalformedMessage)
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadString reads exactly n bytes.
func (r *Reader) ReadString(n uint32) (string, error) {
	r.FlushBits()
	if uint32(len(r.buf)-r.pos) < n {
		return "", fmt.Errorf("%w: declared %d bytes, %d left", errors.ErrMalformedMessage, n, len(r.buf)-r.pos)
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// Remaining is the number of unread whole bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}
