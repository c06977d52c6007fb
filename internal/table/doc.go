// Package table holds the four PEtab tables (condition, measurement,
// parameter, observable) and their tab-separated file format.
//
// Every cell that may hold a number or a parameter ID is read into a Value,
// a tagged union of a float literal, a parameter reference or a missing
// marker. NaN never appears inside a Value.
package table
