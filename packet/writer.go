package packet

import "encoding/binary"

// Writer is the mirror of Reader.
type Writer struct {
	buf     []byte
	bitPos  uint8
	curByte byte
}

func NewWriter() *Writer {
	return &Writer{bitPos: 8}
}

// WriteBits writes the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n uint8) {
	for i := int(n) - 1; i >= 0; i-- {
		if w.bitPos == 8 {
			w.bitPos = 0
			w.curByte = 0
		}
		if (v>>uint(i))&1 == 1 {
			w.curByte |= 1 << (7 - w.bitPos)
		}
		w.bitPos++
		if w.bitPos == 8 {
			w.buf = append(w.buf, w.curByte)
		}
	}
}

// WriteBit writes a single flag bit.
func (w *Writer) WriteBit(on bool) {
	if on {
		w.WriteBits(1, 1)
		return
	}
	w.WriteBits(0, 1)
}

// FlushBits pads the current byte with zero bits.
func (w *Writer) FlushBits() {
	if w.bitPos != 8 && w.bitPos != 0 {
		w.buf = append(w.buf, w.curByte)
	}
	w.bitPos = 8
	w.curByte = 0
}

func (w *Writer) WriteUint8(v uint8) {
	w.FlushBits()
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteUint32(v uint32) {
	w.FlushBits()
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteUint64(v uint64) {
	w.FlushBits()
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteString(s string) {
	w.FlushBits()
	w.buf = append(w.buf, s...)
}

func (w *Writer) Bytes() []byte {
	w.FlushBits()
	return w.buf
}
