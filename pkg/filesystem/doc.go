// Package filesystem provides filesystem implementations for sysknife.
//
// NewOS is used by the commands; NewAferoFS wraps an afero filesystem and is
// what the tests use for in-memory word lists and link targets.
package filesystem
