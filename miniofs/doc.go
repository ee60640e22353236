// Package miniofs provides a MinIO/S3-compatible implementation of the
// cloudpath.Backend contract using the minio-go SDK.
//
// Paths are absolute within the bucket (below the configured key
// prefix): "/reports/2024/jan.csv" maps to the object key
// "reports/2024/jan.csv". Directories are virtual: MakeDirs writes a
// zero-byte "dir/" marker object so existence and type checks behave,
// and a prefix with objects under it counts as a directory whether or
// not a marker exists.
//
// Reads stream directly from GetObject. Writes buffer in memory and
// upload the full payload on Close, so a handle's contents become
// visible to other readers only after Close returns.
//
// Moves are copy-then-delete. Moving a directory copies every object
// under the prefix, bounded by Config.MaxMoveConcurrency concurrent
// copies, then deletes the sources; the move is not atomic.
package miniofs
