// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 16 << 20

var (
	// ErrNotInteger reports a token that is not a base-10 int64.
	ErrNotInteger = errors.New("matrixio: token is not an integer")

	// ErrRaggedRows reports a row whose width differs from the first row of
	// its block. It is the matrix package sentinel, so either name matches.
	ErrRaggedRows = matrix.ErrRaggedRows
)

// ParseError locates a malformed input line. Unwrap yields the sentinel.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token, empty for width errors
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("matrixio: line %d: %q: %v", e.Line, e.Token, e.Err)
	}

	return fmt.Sprintf("matrixio: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses every matrix in r, in input order.
// MAIN DESCRIPTION:
//   - Split the stream into blank-line separated blocks, one Dense per block.
//
// Implementation:
//   - Stage 1: scan line by line; a non-blank line becomes a row of int64.
//   - Stage 2: a blank line closes the current block (if any).
//   - Stage 3: EOF closes the last block, so no trailing blank line is needed.
//
// Errors:
//   - *ParseError wrapping ErrNotInteger or ErrRaggedRows; I/O errors as-is.
func Read(r io.Reader) ([]*matrix.Dense, error) {
	var (
		out   []*matrix.Dense
		block [][]int64
		line  int
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		m, err := matrix.NewFromRows(block)
		if err != nil {
			return err
		}
		out = append(out, m)
		block = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		row := make([]int64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: ErrNotInteger}
			}
			row[i] = v
		}
		if len(block) > 0 && len(row) != len(block[0]) {
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("%d values, want %d: %w", len(row), len(block[0]), ErrRaggedRows),
			}
		}
		block = append(block, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open %s: %w", path, err)
	}
	defer f.Close()

	ms, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ms, nil
}
