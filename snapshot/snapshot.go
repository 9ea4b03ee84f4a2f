package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/centrogo/blobstore"
	"github.com/hupe1980/centrogo/codec"
)

// Model is the persisted form of a fitted classifier: the vector dimension,
// the class set in declared (tie-break) order, and one centroid per class.
type Model struct {
	Dimension int                  `json:"dimension"`
	Classes   []string             `json:"classes"`
	Centroids map[string][]float32 `json:"centroids"`
}

// Options configures snapshot encoding.
type Options struct {
	// Codec encodes the model payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression is applied to the encoded payload. Defaults to
	// CompressionZstd; use CompressionNone for human-inspectable payloads.
	Compression Compression
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{
	Codec:       codec.Default,
	Compression: CompressionZstd,
}

// Save encodes m and writes it to the named blob.
func Save(ctx context.Context, store blobstore.Store, name string, m *Model, optFns ...func(o *Options)) error {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	encoded, err := opts.Codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	payload, err := compress(opts.Compression, encoded)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeHeader(&buf, opts.Codec.Name(), opts.Compression, uint64(len(payload)))
	buf.Write(payload)

	var crc [4]byte
	binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(payload))
	buf.Write(crc[:])

	return store.Put(ctx, name, buf.Bytes())
}

// Load reads and validates the named blob and decodes the model.
//
// The header records codec and compression, so Load needs no options.
func Load(ctx context.Context, store blobstore.Store, name string) (*Model, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}

	codecName, compression, payloadLen, rest, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	if uint64(len(rest)) < payloadLen+4 {
		return nil, ErrTruncated
	}
	payload := rest[:payloadLen]

	expected := binary.LittleEndian.Uint32(rest[payloadLen : payloadLen+4])
	if actual := crc32.ChecksumIEEE(payload); actual != expected {
		return nil, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	encoded, err := decompress(compression, payload)
	if err != nil {
		return nil, err
	}

	var m Model
	if err := c.Unmarshal(encoded, &m); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}

	return &m, nil
}

// Header layout (little endian):
//
//	magic uint32 | version uint32 | compression uint8 |
//	codecNameLen uint8 | codecName bytes | payloadLen uint64
func writeHeader(buf *bytes.Buffer, codecName string, compression Compression, payloadLen uint64) {
	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], MagicNumber)
	buf.Write(u32[:])
	binary.LittleEndian.PutUint32(u32[:], Version)
	buf.Write(u32[:])

	buf.WriteByte(byte(compression))
	buf.WriteByte(byte(len(codecName)))
	buf.WriteString(codecName)

	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], payloadLen)
	buf.Write(u64[:])
}

func readHeader(data []byte) (codecName string, compression Compression, payloadLen uint64, rest []byte, err error) {
	if len(data) < 10 {
		return "", 0, 0, nil, ErrTruncated
	}

	if binary.LittleEndian.Uint32(data[0:4]) != MagicNumber {
		return "", 0, 0, nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:8]) != Version {
		return "", 0, 0, nil, ErrInvalidVersion
	}

	compression = Compression(data[8])
	nameLen := int(data[9])

	if len(data) < 10+nameLen+8 {
		return "", 0, 0, nil, ErrTruncated
	}
	codecName = string(data[10 : 10+nameLen])
	payloadLen = binary.LittleEndian.Uint64(data[10+nameLen : 10+nameLen+8])
	rest = data[10+nameLen+8:]

	return codecName, compression, payloadLen, rest, nil
}
