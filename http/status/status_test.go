package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, Status("OK"), Text(OK))
	assert.Equal(t, Status("Method Not Allowed"), Text(MethodNotAllowed))
	assert.Equal(t, Status(""), Text(Code(999)))
}
