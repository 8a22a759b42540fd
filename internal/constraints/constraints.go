// Package constraints provides type constraints shared by the parser packages.
package constraints

// Byteseq is satisfied by raw URI input: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
