// Package scp reads and writes script files: plain text lists naming one
// audio file per line, as produced by sinegen and consumed by cascade.
package scp
