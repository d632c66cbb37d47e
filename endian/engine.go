// Package endian provides byte order utilities for the table codec.
//
// The EndianEngine interface combines binary.ByteOrder and binary.AppendByteOrder so
// that a single value can both decode fixed-size fields and append new ones:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, count)
//	buf = endian.AppendFloat64s(engine, buf, values)
//
// All functions in this package are safe for concurrent use. The returned engines are
// stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x01
}

// AppendFloat64s appends the IEEE 754 bits of every value to dst and returns the
// extended slice.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	dst = growBytes(dst, len(values)*8)
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// Float64s decodes count float64 values from the start of src.
//
// It returns false when src holds fewer than count*8 bytes.
func Float64s(engine EndianEngine, src []byte, count int) ([]float64, bool) {
	if count < 0 || len(src) < count*8 {
		return nil, false
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}

	return values, true
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
