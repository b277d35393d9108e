package knitter

import (
	"bufio"
	"io"
	"strings"
)

// WriteTo writes every row followed by a single newline.
func (p Pattern) WriteTo(w io.Writer) (int64, error) {
	wr := bufio.NewWriter(w)

	var total int64
	for _, row := range p {
		n, err := wr.WriteString(row)
		total += int64(n)
		if err != nil {
			return total, err
		}

		if err := wr.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	return total, wr.Flush()
}

// String returns the pattern as it is written by WriteTo.
func (p Pattern) String() string {
	var sb strings.Builder
	for _, row := range p {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Bytes returns the pattern as it is written by WriteTo.
func (p Pattern) Bytes() []byte {
	return []byte(p.String())
}
