// Package lint checks PEtab tables for consistency before mapping.
//
// Checks that want every violation report into diagnostic.Diagnostics;
// ValidateOverrideCounts instead fails fast on the first violation and is
// meant as a pre-flight check ahead of parameter mapping.
package lint
