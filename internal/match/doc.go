// Package match provides fuzzy identifier matching used to attach
// "did you mean" suggestions to unknown observable, condition and
// parameter IDs.
//
// Key functions:
//   - NormalizeID: case-folds an identifier and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known identifiers by similarity to an unknown one
package match
