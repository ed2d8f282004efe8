// Package matrixio reads and writes the plain-text matrix format consumed by
// strassenbench.
//
// Format:
//
//	1 2
//	3 4
//
//	5 6
//	7 8
//
// One row per line, integers separated by whitespace, matrices separated by
// one or more blank (or whitespace-only) lines. There is no size header;
// dimensions are inferred from the content. A final block without a trailing
// blank line is still returned.
package matrixio
