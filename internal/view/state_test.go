package view

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID_DoesNotAliasInput(t *testing.T) {
	// Request routers hand out strings backed by reused buffers.
	buf := []byte("about")
	raw := unsafe.String(&buf[0], len(buf))

	id, err := ParseID(raw)
	require.NoError(t, err)

	copy(buf, "zzzzz")
	assert.Equal(t, About, id)
}
