package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/format"
	"github.com/stretchr/testify/require"
)

// sampledPayload mimics a table payload: a linear grid followed by sin values.
func sampledPayload(n int) []byte {
	buf := make([]byte, 0, n*16)
	for i := 0; i < n; i++ {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(i)*0.01))
	}
	for i := 0; i < n; i++ {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(math.Sin(float64(i)*0.01)))
	}

	return buf
}

func TestCodecsRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"sampled":    sampledPayload(512),
		"repetitive": bytes.Repeat([]byte("f(x) = 2x + 3;"), 300),
		"single":     {0x42},
	}

	for _, ct := range format.CompressionTypes() {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecsEmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed, ct.String())

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored, ct.String())
	}
}

func TestCodecsShrinkRepetitiveData(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 1024)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		compressed, stats, err := Measure(ct, data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), ct.String())
		require.Equal(t, ct, stats.Algorithm)
		require.Equal(t, int64(len(data)), stats.OriginalSize)
		require.Equal(t, int64(len(compressed)), stats.CompressedSize)
		require.Less(t, stats.CompressionRatio(), 1.0)
		require.Greater(t, stats.SpaceSavings(), 0.0)
	}
}

func TestNoOpIsIdentity(t *testing.T) {
	data := []byte("unchanged")
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	_, stats, err := Measure(format.CompressionNone, data)
	require.NoError(t, err)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-12)
	require.InDelta(t, 0.0, stats.SpaceSavings(), 1e-12)
}

func TestCompressionStatsZeroSize(t *testing.T) {
	var stats CompressionStats
	require.Zero(t, stats.CompressionRatio())
	require.Zero(t, stats.SpaceSavings())
}

func TestUnknownCompressionType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7f))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = CreateCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, _, err = Measure(format.CompressionType(9), []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCorruptedInput(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestLZ4DecompressHighRatio(t *testing.T) {
	// Zeros compress far beyond the initial 4x output guess.
	data := make([]byte, 4<<20)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*64, len(data))

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, restored)
}
