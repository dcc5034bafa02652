package balltree

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm applied to
// snapshot payloads.
type CompressionType uint8

const (
	// CompressionNone stores payloads uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (ct CompressionType) String() string {
	switch ct {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(ct))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data].
// CompressedSize == 0 means the data is stored uncompressed, which
// also covers incompressible payloads.
const blockHeaderSize = 8

// compressBlock compresses data with the given algorithm, falling back
// to uncompressed storage when compression does not pay off.
func compressBlock(data []byte, compressionType CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch compressionType {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed, err = compressBlockZSTD(data)
	default:
		return nil, fmt.Errorf("balltree: unsupported compression type %d", compressionType)
	}
	if err != nil {
		return nil, err
	}

	// If compression doesn't help (ratio > 0.9), store uncompressed.
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, compressionType CompressionType) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, errors.New("balltree: block too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < blockHeaderSize+uncompressedSize {
			return nil, errors.New("balltree: block data too small")
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)) < blockHeaderSize+compressedSize {
		return nil, errors.New("balltree: compressed block data too small")
	}

	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch compressionType {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("balltree: decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("balltree: decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("balltree: unsupported compression type %d", compressionType)
	}
}
