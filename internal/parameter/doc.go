// Package parameter implements parameter scales and queries over the
// parameter table: optimization parameter lists, scaled nominal values and
// bounds, priors, and generation of a fresh parameter table for a problem.
package parameter
