package spectrum

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/isingo/spin"
)

// cancelStride is how many rows are written between context checks.
const cancelStride = 1 << 12

// ErrInvalidCompression is returned for an unknown Compression value.
var ErrInvalidCompression = errors.New("invalid compression")

// ErrTooManySites is returned when the configuration space does not fit a
// uint64 index.
var ErrTooManySites = errors.New("too many sites to enumerate")

// Compression selects the stream compression applied to the CSV output.
type Compression int

const (
	// None writes plain CSV.
	None Compression = iota
	// Gzip compresses with gzip (widely readable, moderate ratio).
	Gzip
	// Zstd compresses with zstandard (better ratio, fast).
	Zstd
	// LZ4 compresses with lz4 (fastest, lighter ratio).
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "None"
	case Gzip:
		return "Gzip"
	case Zstd:
		return "Zstd"
	case LZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Energizer is the part of a model the spectrum export needs.
// *isingo.Model satisfies it.
type Energizer interface {
	Sites() int
	Energy(c *spin.BitConfig) (float64, error)
}

// Dump writes the full spectrum of m to w as CSV with a header row,
// one "index,energy" row per configuration in index order, compressed
// according to c.
//
// Dump is sequential by construction: row order is index order. It honors
// ctx cancellation between blocks of rows; on cancellation the output is
// truncated and the error reported, no partial result is valid.
func Dump(ctx context.Context, w io.Writer, m Energizer, c Compression) error {
	n := m.Sites()
	if n > 63 {
		return fmt.Errorf("%w: 2^%d configurations", ErrTooManySites, n)
	}

	cw, closer, err := compressedWriter(w, c)
	if err != nil {
		return err
	}

	if err := dumpRows(ctx, cw, m, n); err != nil {
		if closer != nil {
			closer.Close()
		}
		return err
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}

// compressedWriter wraps w per the selected compression. The returned
// closer flushes the compressor and must be closed on success; it does not
// close w itself.
func compressedWriter(w io.Writer, c Compression) (io.Writer, io.Closer, error) {
	switch c {
	case None:
		return w, nil, nil
	case Gzip:
		zw := gzip.NewWriter(w)
		return zw, zw, nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw, nil
	case LZ4:
		zw := lz4.NewWriter(w)
		return zw, zw, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidCompression, int(c))
	}
}

func dumpRows(ctx context.Context, w io.Writer, m Energizer, n int) error {
	cfg, err := spin.New(n)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "energy"}); err != nil {
		return err
	}

	total := uint64(1) << uint(n)
	for i := uint64(0); i < total; i++ {
		if i%cancelStride == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if err := cfg.FromInteger(i); err != nil {
			return err
		}
		e, err := m.Energy(cfg)
		if err != nil {
			return err
		}
		row := []string{
			strconv.FormatUint(i, 10),
			strconv.FormatFloat(e, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
