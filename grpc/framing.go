package grpc

import (
	"encoding/binary"
	"fmt"

	"world-chat/errors"
	"world-chat/packet"
)

// opcodeSize is the little-endian opcode prepended to every packet carried over the gateway.
const opcodeSize = 2

func PackPacket(op packet.Opcode, payload []byte) []byte {
	b := make([]byte, opcodeSize, opcodeSize+len(payload))
	binary.LittleEndian.PutUint16(b, uint16(op))
	return append(b, payload...)
}

func UnpackPacket(b []byte) (packet.Opcode, []byte, error) {
	if len(b) < opcodeSize {
		return 0, nil, fmt.Errorf("%w: packet of %d bytes has no opcode", errors.ErrMalformedMessage, len(b))
	}
	return packet.Opcode(binary.LittleEndian.Uint16(b)), b[opcodeSize:], nil
}
