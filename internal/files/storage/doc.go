// Package storage reads and writes comps documents by path.
//
// Bytes move through github.com/viant/afs. Plain paths, file:// and mem://
// URLs are accepted; network schemes fail with ErrUnsupportedLocation.
// Writes to local files are serialized across processes with an advisory
// lock file in the system temp directory (github.com/gofrs/flock), see
// LockPath. Compressed inputs are rejected with comps.ErrCompressed instead
// of being decompressed.
package storage
