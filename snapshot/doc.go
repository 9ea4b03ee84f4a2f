// Package snapshot persists fitted centroid models.
//
// A snapshot is a self-describing binary envelope: a fixed header records
// the format version, the codec that encoded the model payload and the
// compression applied to it, followed by the payload and a CRC32 checksum.
// Load validates all of it before handing the model back, so a truncated or
// corrupted blob is rejected instead of silently producing bad centroids.
package snapshot
