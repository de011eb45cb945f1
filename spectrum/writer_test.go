package spectrum

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/isingo"
	"github.com/hupe1980/isingo/spin"
)

// chain3 is the fixture model: 3-site chain, unit couplings at both
// endpoints, 1.2 field on site 0.
func chain3(t *testing.T) *isingo.Model {
	t.Helper()
	couplings := [][]isingo.Coupling{
		{{Neighbor: 1, Strength: 1.0}},
		{{Neighbor: 0, Strength: 1.0}, {Neighbor: 2, Strength: 1.0}},
		{{Neighbor: 1, Strength: 1.0}},
	}
	m, err := isingo.New(couplings, []float64{1.2, 0, 0})
	require.NoError(t, err)
	return m
}

func TestDumpPlain(t *testing.T) {
	m := chain3(t)

	var buf bytes.Buffer
	require.NoError(t, Dump(context.Background(), &buf, m, None))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+8, "header plus one row per configuration")
	assert.Equal(t, []string{"index", "energy"}, records[0])

	c, err := spin.New(3)
	require.NoError(t, err)
	for i, rec := range records[1:] {
		idx, err := strconv.ParseUint(rec[0], 10, 64)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), idx, "rows are in index order")

		require.NoError(t, c.FromInteger(idx))
		want, err := m.Energy(c)
		require.NoError(t, err)
		got, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		assert.Equal(t, want, got, "energy round-trips through the 'g' format")
	}
}

func TestDumpCompressed(t *testing.T) {
	m := chain3(t)

	var plain bytes.Buffer
	require.NoError(t, Dump(context.Background(), &plain, m, None))

	tests := []struct {
		name        string
		compression Compression
		decompress  func(t *testing.T, r io.Reader) io.Reader
	}{
		{"Gzip", Gzip, func(t *testing.T, r io.Reader) io.Reader {
			zr, err := gzip.NewReader(r)
			require.NoError(t, err)
			return zr
		}},
		{"Zstd", Zstd, func(t *testing.T, r io.Reader) io.Reader {
			zr, err := zstd.NewReader(r)
			require.NoError(t, err)
			return zr.IOReadCloser()
		}},
		{"LZ4", LZ4, func(t *testing.T, r io.Reader) io.Reader {
			return lz4.NewReader(r)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Dump(context.Background(), &buf, m, tt.compression))

			got, err := io.ReadAll(tt.decompress(t, &buf))
			require.NoError(t, err)
			assert.Equal(t, plain.Bytes(), got)
		})
	}
}

func TestDumpInvalidCompression(t *testing.T) {
	m := chain3(t)

	var buf bytes.Buffer
	err := Dump(context.Background(), &buf, m, Compression(42))
	assert.ErrorIs(t, err, ErrInvalidCompression)
}

func TestDumpCancellation(t *testing.T) {
	m := chain3(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Dump(ctx, &buf, m, None)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Gzip", Gzip.String())
	assert.Equal(t, "Zstd", Zstd.String())
	assert.Equal(t, "LZ4", LZ4.String())
	assert.Equal(t, "Unknown(42)", Compression(42).String())
}
