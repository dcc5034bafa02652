// Package balltree implements an online ball tree: a dynamically
// maintained binary tree over labeled points in a fixed-dimensional
// Euclidean space, supporting insertion, removal, nearest-neighbour
// and k-nearest-neighbour queries.
//
// It is the first online construction algorithm from Omohundro,
// "Five Balltree Construction Algorithms" (1989), pages 11-14. Every
// node owns a bounding hypersphere; leaves hold exactly one stored
// point and its payload, and interior balls always enclose their
// subtrees. New points are attached to the sibling that minimizes the
// total volume growth of the tree, found with a branch-and-bound
// fringe search.
//
// # Quick Start
//
//	ctx := context.Background()
//	tree, err := balltree.New[string](2)
//	if err != nil {
//	    panic(err)
//	}
//
//	_, _ = tree.Insert(ctx, []float64{0, 0}, "origin")
//	_, _ = tree.Insert(ctx, []float64{3, 4}, "far")
//
//	item, ok, _ := tree.NearestNeighbour(ctx, []float64{1, 0})
//	// item == "origin", ok == true
//
// # Snapshots
//
// A tree can be serialized through a codec, compressed, and written to
// any BlobStore implementation (local filesystem, in-memory, S3,
// MinIO):
//
//	store := blobstore.NewLocalStore("./data")
//	_ = tree.SaveSnapshot(ctx, store, "tree.snap")
//	tree2, _ := balltree.LoadSnapshot[string](ctx, store, "tree.snap")
//
// # Limits and Concurrency
//
// Locations are float64 vectors of at most 452 dimensions; above that
// the volume of the unit ball underflows to 0.0 and the insertion
// objective degenerates. The tree is not safe for concurrent mutation;
// callers sharing a tree across goroutines must serialize access
// externally. Query and repair traversals recurse to tree height,
// which is typically logarithmic but not guaranteed balanced.
package balltree
