package balltree

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/balltree/blobstore"
	"github.com/hupe1980/balltree/codec"
)

// Snapshot blob layout:
//
//	[magic "BTS1"][compression uint8][codec name len uint8][codec name]
//	[compressed block]
//
// The codec and compression are recorded in the header so a snapshot
// is self-describing: LoadSnapshot does not need to know how it was
// written.
var snapshotMagic = []byte("BTS1")

// SaveSnapshot serializes the tree through the configured codec and
// compression and writes it as a single blob to the store.
func (t *Tree[T]) SaveSnapshot(ctx context.Context, store blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		t.opts.metrics.RecordSnapshot("save", size, time.Since(start), err)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	payload, err := t.opts.codec.Marshal(t.state())
	if err != nil {
		return fmt.Errorf("balltree: encode snapshot: %w", err)
	}

	block, err := compressBlock(payload, t.opts.compression)
	if err != nil {
		return fmt.Errorf("balltree: compress snapshot: %w", err)
	}

	codecName := t.opts.codec.Name()
	if len(codecName) > 255 {
		return fmt.Errorf("balltree: codec name too long: %q", codecName)
	}

	blob := make([]byte, 0, len(snapshotMagic)+2+len(codecName)+len(block))
	blob = append(blob, snapshotMagic...)
	blob = append(blob, byte(t.opts.compression))
	blob = append(blob, byte(len(codecName)))
	blob = append(blob, codecName...)
	blob = append(blob, block...)

	if err = store.Put(ctx, name, blob); err != nil {
		return fmt.Errorf("balltree: write snapshot %q: %w", name, err)
	}

	size = len(blob)
	t.opts.logger.Info("snapshot saved",
		"name", name,
		"size", t.size,
		"bytes", size,
		"codec", codecName,
		"compression", t.opts.compression.String(),
	)
	return nil
}

// LoadSnapshot reads a snapshot blob from the store and rebuilds the
// tree it describes. The codec and compression are taken from the
// snapshot header; options only configure the returned tree.
//
// The payload type T must match the type the snapshot was written
// with.
func LoadSnapshot[T any](ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Tree[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("balltree: open snapshot %q: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	data := make([]byte, blob.Size())
	if _, err := blob.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("balltree: read snapshot %q: %w", name, err)
	}

	header := len(snapshotMagic) + 2
	if len(data) < header {
		return nil, fmt.Errorf("balltree: snapshot %q too small", name)
	}
	if string(data[:len(snapshotMagic)]) != string(snapshotMagic) {
		return nil, fmt.Errorf("balltree: snapshot %q has bad magic", name)
	}

	compression := CompressionType(data[len(snapshotMagic)])
	nameLen := int(data[len(snapshotMagic)+1])
	if len(data) < header+nameLen {
		return nil, fmt.Errorf("balltree: snapshot %q has truncated header", name)
	}
	codecName := string(data[header : header+nameLen])

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("balltree: snapshot %q uses unknown codec %q", name, codecName)
	}

	payload, err := decompressBlock(data[header+nameLen:], compression)
	if err != nil {
		return nil, fmt.Errorf("balltree: decompress snapshot %q: %w", name, err)
	}

	var s treeState[T]
	if err := c.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("balltree: decode snapshot %q: %w", name, err)
	}

	t, err := New[T](s.Dimension, optFns...)
	if err != nil {
		return nil, err
	}
	if err := t.restore(s); err != nil {
		return nil, err
	}

	t.opts.logger.Info("snapshot loaded",
		"name", name,
		"size", t.size,
		"codec", codecName,
		"compression", compression.String(),
	)
	return t, nil
}
