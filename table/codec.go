package table

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/mathfn/compress"
	"github.com/arloliu/mathfn/endian"
	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/format"
	"github.com/arloliu/mathfn/internal/hash"
	"github.com/arloliu/mathfn/internal/options"
	"github.com/arloliu/mathfn/internal/pool"
)

// Encode serializes the table.
//
// Options:
//   - WithCompression: payload codec (default format.CompressionNone)
//   - WithBigEndian: big-endian numeric fields (default little-endian)
//
// Returns errs.ErrEmptyTable for a table without samples, errs.ErrUnknownKind for a
// kind that cannot be decoded, and errs.ErrPayloadSize when the samples exceed what
// the selected codec can restore.
func (t *Table) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(t.Xs) == 0 {
		return nil, errs.ErrEmptyTable
	}
	if len(t.Xs) != len(t.Ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", errs.ErrPayloadSize, len(t.Xs), len(t.Ys))
	}
	if len(t.Xs) > math.MaxUint32/16 {
		return nil, fmt.Errorf("%w: %d samples", errs.ErrPayloadSize, len(t.Xs))
	}
	if t.Kind.Arity() < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownKind, int(t.Kind))
	}
	if err := checkPayloadLimit(cfg.Compression, uint64(len(t.Xs))*16); err != nil {
		return nil, err
	}
	if len(t.Formula) > MaxFormulaLength {
		return nil, fmt.Errorf("%w: formula is %d bytes", errs.ErrInvalidHeaderSize, len(t.Formula))
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	header := Header{
		Compression: cfg.Compression,
		Kind:        t.Kind,
		ID:          hash.ID(t.Formula),
		Count:       uint32(len(t.Xs)),
	}
	if cfg.BigEndian {
		header.Flags |= FlagBigEndian
	}
	engine := header.Engine()

	raw := pool.GetTableBuffer()
	defer pool.PutTableBuffer(raw)
	raw.B = endian.AppendFloat64s(engine, raw.B, t.Xs)
	raw.B = endian.AppendFloat64s(engine, raw.B, t.Ys)

	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload is %d bytes", errs.ErrPayloadSize, len(payload))
	}
	header.PayloadLength = uint32(len(payload))

	out := pool.GetTableBuffer()
	defer pool.PutTableBuffer(out)
	_, _ = out.Write(header.Bytes())
	out.B = engine.AppendUint16(out.B, uint16(len(t.Formula)))
	out.B = append(out.B, t.Formula...)
	_, _ = out.Write(payload)
	out.B = engine.AppendUint32(out.B, crc32.ChecksumIEEE(out.Bytes()))

	return out.Clone(), nil
}

// checkPayloadLimit rejects raw payloads the selected codec cannot restore.
// LZ4 blocks do not record their decompressed size, so Decompress caps its output.
func checkPayloadLimit(ct format.CompressionType, rawSize uint64) error {
	if ct == format.CompressionLZ4 && rawSize > uint64(compress.MaxLZ4DecompressedSize) {
		return fmt.Errorf("%w: %d byte payload exceeds the %d byte LZ4 limit",
			errs.ErrPayloadSize, rawSize, compress.MaxLZ4DecompressedSize)
	}

	return nil
}

// Decode parses a table produced by Encode.
//
// It verifies the header, the CRC32 checksum, the payload size and the formula hash
// before returning the samples.
func Decode(data []byte) (*Table, error) {
	if len(data) < minEncodedSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", errs.ErrInvalidHeaderSize, len(data), minEncodedSize)
	}

	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}
	engine := header.Engine()

	body := data[:len(data)-ChecksumSize]
	want := engine.Uint32(data[len(data)-ChecksumSize:])
	if got := crc32.ChecksumIEEE(body); got != want {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", errs.ErrChecksumMismatch, want, got)
	}

	offset := HeaderSize
	formulaLen := int(engine.Uint16(data[offset:]))
	offset += FormulaLengthSize

	expected := offset + formulaLen + int(header.PayloadLength) + ChecksumSize
	if expected != len(data) {
		return nil, fmt.Errorf("%w: header describes %d bytes, got %d", errs.ErrInvalidHeaderSize, expected, len(data))
	}

	formula := string(data[offset : offset+formulaLen])
	offset += formulaLen
	if !hash.Verify(formula, header.ID) {
		return nil, fmt.Errorf("%w: %q", errs.ErrHashMismatch, formula)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data[offset : offset+int(header.PayloadLength)])
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	count := int(header.Count)
	if len(raw) != count*16 {
		return nil, fmt.Errorf("%w: %d bytes for %d samples", errs.ErrPayloadSize, len(raw), count)
	}
	xs, _ := endian.Float64s(engine, raw, count)
	ys, _ := endian.Float64s(engine, raw[count*8:], count)

	return &Table{
		Kind:    header.Kind,
		Formula: formula,
		ID:      header.ID,
		Xs:      xs,
		Ys:      ys,
	}, nil
}
