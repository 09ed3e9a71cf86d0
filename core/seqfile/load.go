// Package seqfile reads a single sequence from a text or FASTA file.
package seqfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMultipleRecords is returned when a FASTA input holds more than one record.
	ErrMultipleRecords = errors.New("seqfile: more than one FASTA record")
	// ErrSequenceBeforeHeader is returned when sequence lines precede a '>' header.
	ErrSequenceBeforeHeader = errors.New("seqfile: sequence data before FASTA header")
)

// Sequence is a loaded sequence. ID is the FASTA header's first word, or
// empty for plain-text input.
type Sequence struct {
	ID  string
	Seq []byte
}

// Load reads the sequence stored at path ("-" for stdin).
func Load(path string) (Sequence, error) {
	rc, err := openReader(path)
	if err != nil {
		return Sequence{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	s, err := Read(rc)
	if err != nil {
		return Sequence{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}

// Read parses one sequence from r. Plain text has its line breaks and
// surrounding whitespace removed. A leading '>' line marks FASTA input; the
// header is dropped and the record's lines are joined. Bytes are otherwise
// kept as-is. Line length is unbounded, so a whole chromosome may sit on one line.
func Read(r io.Reader) (Sequence, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		s       Sequence
		headers int
	)
	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Sequence{}, fmt.Errorf("read line: %w", err)
		}
		eof := err == io.EOF

		if line := bytes.TrimSpace(raw); len(line) > 0 {
			switch {
			case line[0] != '>':
				s.Seq = append(s.Seq, line...)
			case headers > 0:
				return Sequence{}, ErrMultipleRecords
			case len(s.Seq) > 0:
				return Sequence{}, ErrSequenceBeforeHeader
			default:
				headers++
				s.ID = parseHeaderID(line[1:])
			}
		}
		if eof {
			break
		}
	}
	return s, nil
}

func parseHeaderID(h []byte) string {
	f := bytes.Fields(h)
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}
