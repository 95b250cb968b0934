// Package types holds the plain data types shared across renamr's layers:
// scanned files, planned rename operations, and the filesystem interface
// that keeps the scanner and executor testable against an in-memory
// implementation.
package types
