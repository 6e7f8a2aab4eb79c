package uridecode

import (
	"strings"

	"github.com/indigo-web/utils/uf"

	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/hexconv"
)

// Decode translates percent-escaped characters in the path into their true
// form. Truncated and non-hexadecimal escapes fail with a 400-classified
// error; a path without escapes is returned as-is.
func Decode(src string) (string, error) {
	i := strings.IndexByte(src, '%')
	if i == -1 {
		return src, nil
	}

	decoded := make([]byte, 0, len(src))

	for ; i != -1; i = strings.IndexByte(src, '%') {
		if i >= len(src)-2 {
			return "", status.ErrURLDecoding
		}

		a, b := src[i+1], src[i+2]
		if !hexconv.Valid(a) || !hexconv.Valid(b) {
			return "", status.ErrURLDecoding
		}

		decoded = append(decoded, src[:i]...)
		decoded = append(decoded, hexconv.Parse(a)<<4|hexconv.Parse(b))
		src = src[i+3:]
	}

	return uf.B2S(append(decoded, src...)), nil
}
