// Package files groups document file handling:
//   - storage: reading and writing documents through afs with file locking
//   - scanner: expanding directory arguments into comps documents
package files
