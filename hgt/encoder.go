package hgt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encode writes the grid in the HGT layout: rows top to bottom, columns left
// to right, each sample two bytes big-endian two's-complement. The output is
// exactly Rows*Cols*2 bytes with no header or padding.
func (g *Grid) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows; r++ {
		row := g.Samples[r*g.Cols : (r+1)*g.Cols]
		if err := binary.Write(bw, binary.BigEndian, row); err != nil {
			return fmt.Errorf("hgt: encode row %d: %w", r, err)
		}
	}
	return bw.Flush()
}

// WriteFile encodes the grid to path, creating or overwriting the file.
func (g *Grid) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
