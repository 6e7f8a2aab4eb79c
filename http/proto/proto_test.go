package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, HTTP11, Parse("HTTP/1.1"))
	assert.Equal(t, HTTP10, Parse("HTTP/1.0"))

	for _, raw := range []string{"", "HTTP/2", "HTTP/1.2", "HTTP/0.9", "http/1.1", "HTTP/1x1"} {
		assert.Equal(t, Unknown, Parse(raw), raw)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "HTTP/1.1", HTTP11.String())
	assert.Equal(t, "", Unknown.String())
}
