package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/highwayhash"

	"github.com/j-mracek/libcomps/pkg/comps"
	"github.com/j-mracek/libcomps/pkg/compsxml"
)

// fingerprintKey is the fixed HighwayHash key. Changing it changes every
// fingerprint.
var fingerprintKey = []byte("comps-fingerprint-key-0123456789")

// NamespaceDocument is the UUIDv5 namespace for document identities.
// uuid.NameSpaceURL is the standard UUID v5 namespace for URL identifiers.
var NamespaceDocument = uuid.NewSHA1(uuid.NameSpaceURL, []byte("libcomps/document-identity/v1"))

// Identity is the content identity of one document.
type Identity struct {
	Fingerprint uint64
	ID          uuid.UUID
	Size        int // length of the canonical serialization in bytes
}

// String renders the fingerprint as 16 hex digits.
func (i Identity) String() string {
	return fmt.Sprintf("%016x", i.Fingerprint)
}

// Raw computes the SHA-256 of content as a hex string.
func Raw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Fingerprint computes the 64-bit HighwayHash of a canonical serialization.
func Fingerprint(canonical []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	if _, err := hash.Write(canonical); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}

// DocumentID derives a deterministic UUIDv5 from a canonical serialization.
func DocumentID(canonical []byte) uuid.UUID {
	return uuid.NewSHA1(NamespaceDocument, canonical)
}

// Identify serializes doc canonically and returns its identity.
func Identify(doc *comps.Comps) (Identity, error) {
	canonical, err := compsxml.SerializeToString(doc)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to canonicalize document: %w", err)
	}

	data := []byte(canonical)
	fp, err := Fingerprint(data)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to fingerprint document: %w", err)
	}

	return Identity{
		Fingerprint: fp,
		ID:          DocumentID(data),
		Size:        len(data),
	}, nil
}
