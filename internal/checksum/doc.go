// Package checksum fingerprints input files.
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing a byte order mark and
//     unifying line endings, so the same table exported on different
//     platforms gets the same fingerprint
//
// The normalized checksum seeds record identities, which keeps record IDs
// stable across reruns over the same data.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
package checksum
