// Package utils provides type conversion helpers for loosely typed decoded
// JSON, such as the mixed-type triples of the ToD2 grail format.
package utils
