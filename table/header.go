package table

import (
	"fmt"

	"github.com/arloliu/mathfn/endian"
	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/format"
	"github.com/arloliu/mathfn/function"
)

const (
	// MagicTableV1 identifies version 1 of the table format.
	MagicTableV1 = 0xF17A

	// FlagBigEndian marks tables whose numeric fields are big-endian.
	FlagBigEndian = 0x01
	flagMask      = FlagBigEndian
)

// offsets and section sizes in an encoded table
const (
	HeaderSize        = 24 // fixed header size in bytes
	FormulaLengthSize = 2  // u16 length prefix of the formula string
	ChecksumSize      = 4  // trailing CRC32
	MaxFormulaLength  = 1<<16 - 1
	minEncodedSize    = HeaderSize + FormulaLengthSize + ChecksumSize
)

// Header is the fixed-size section at the start of an encoded table.
type Header struct {
	// Flags holds FlagBigEndian. Byte offset 2.
	Flags uint8
	// Compression is the codec applied to the payload. Byte offset 3.
	Compression format.CompressionType
	// Kind is the sampled function's kind. Byte offset 4.
	Kind function.Kind
	// ID is the xxHash64 of the formula string. Byte offset 8-15.
	ID uint64
	// Count is the number of samples. Byte offset 16-19.
	Count uint32
	// PayloadLength is the size of the compressed payload in bytes. Byte offset 20-23.
	PayloadLength uint32
}

// Engine returns the byte order selected by the header flags.
func (h *Header) Engine() endian.EndianEngine {
	return endian.GetEngine(h.Flags&FlagBigEndian != 0)
}

// Bytes serializes the header. The magic number and flags are always little-endian so
// that a decoder can read them before it knows the byte order.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Engine()

	b[0] = byte(MagicTableV1 & 0xff)
	b[1] = byte(MagicTableV1 >> 8)
	b[2] = h.Flags
	b[3] = uint8(h.Compression)
	b[4] = uint8(h.Kind)
	// b[5:8] reserved
	engine.PutUint64(b[8:16], h.ID)
	engine.PutUint32(b[16:20], h.Count)
	engine.PutUint32(b[20:24], h.PayloadLength)

	return b
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is too short
//   - errs.ErrInvalidMagicNumber if the magic number does not match
//   - errs.ErrInvalidHeaderFlags for unknown flag or reserved bits
//   - errs.ErrInvalidCompression or errs.ErrUnknownKind for out-of-range enums
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	magic := uint16(data[0]) | uint16(data[1])<<8
	if magic != MagicTableV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, magic)
	}

	h.Flags = data[2]
	if h.Flags&^flagMask != 0 || data[5] != 0 || data[6] != 0 || data[7] != 0 {
		return fmt.Errorf("%w: flags 0x%02x", errs.ErrInvalidHeaderFlags, h.Flags)
	}

	h.Compression = format.CompressionType(data[3])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[3])
	}

	h.Kind = function.Kind(data[4])
	if h.Kind.Arity() < 0 {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnknownKind, data[4])
	}

	engine := h.Engine()
	h.ID = engine.Uint64(data[8:16])
	h.Count = engine.Uint32(data[16:20])
	h.PayloadLength = engine.Uint32(data[20:24])

	return nil
}
