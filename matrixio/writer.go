// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
)

// Write emits ms in the input format: space separated rows, one blank line
// between matrices. The output round-trips through Read.
func Write(w io.Writer, ms ...*matrix.Dense) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for idx, m := range ms {
		if idx > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		for _, row := range m.ToRows() {
			buf = buf[:0]
			for j, v := range row {
				if j > 0 {
					buf = append(buf, ' ')
				}
				buf = strconv.AppendInt(buf, v, 10)
			}
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes ms into it.
func WriteFile(path string, ms ...*matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrixio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("matrixio: close %s: %w", path, cerr)
		}
	}()

	if err = Write(f, ms...); err != nil {
		return fmt.Errorf("matrixio: write %s: %w", path, err)
	}

	return nil
}
