package cli

import (
	"bufio"
	"io"

	"github.com/agbru/fibmod/internal/config"
	apperrors "github.com/agbru/fibmod/internal/errors"
)

// maxLineBytes bounds the input line; no valid index is this long.
const maxLineBytes = 4096

// ReadIndex reads the first line of r and parses it with config.ParseIndex.
// A missing trailing newline is accepted.
func ReadIndex(r io.Reader) (uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), maxLineBytes)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, apperrors.WrapError(err, "reading index")
		}
		return 0, apperrors.ValidationError{Field: "n", Message: "no index on standard input"}
	}
	return config.ParseIndex(sc.Text())
}
