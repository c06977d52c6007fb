// Package measurement derives simulation conditions and per-row output
// overrides from a measurement table.
package measurement
