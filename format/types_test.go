package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xff), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ct.String())
		})
	}
}

func TestCompressionTypeValid(t *testing.T) {
	for _, ct := range CompressionTypes() {
		require.True(t, ct.Valid(), ct.String())
	}
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
}
