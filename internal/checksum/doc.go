// Package checksum identifies comps documents by content.
//
// Two identities are provided:
//
//   - Raw digest: SHA-256 of the exact input bytes (detects every change)
//   - Canonical identity: a HighwayHash-64 fingerprint and a UUIDv5 computed
//     over the canonical serialization, so documents that differ only in
//     formatting, element order of translations or override keys share one
//     identity
//
// # Example Usage
//
//	id, err := checksum.Identify(doc)
//	fmt.Printf("%016x %s\n", id.Fingerprint, id.ID)
//
// # Thread Safety
//
// All functions are safe for concurrent use by multiple goroutines.
package checksum
