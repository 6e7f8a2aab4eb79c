package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/kv"
)

func TestResponseBuilder(t *testing.T) {
	resp := NewResponse().
		Code(status.MethodNotAllowed).
		ContentType(mime.HTML).
		Header("Allow", "GET, HEAD").
		String("<html></html>")

	fields := resp.Expose()
	assert.Equal(t, status.MethodNotAllowed, fields.Code)
	assert.Equal(t, mime.HTML, fields.ContentType)
	assert.Equal(t, []kv.Pair{{Key: "Allow", Value: "GET, HEAD"}}, fields.Headers)
	assert.Equal(t, "<html></html>", string(fields.Body))
}

func TestResponseDefaults(t *testing.T) {
	fields := NewResponse().Expose()
	assert.Equal(t, status.OK, fields.Code)
	assert.Empty(t, fields.Body)
	assert.Empty(t, fields.Headers)
}
