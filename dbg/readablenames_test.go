package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	Reset()
	a := new(int)

	name := Name(a)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(a))

	assert.Equal(t, "Ø", Name(nil))
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nilPointer))

	Reset()
	assert.Empty(t, memo)
}
