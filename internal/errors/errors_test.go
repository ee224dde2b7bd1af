package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading cart")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
	assert.False(t, IsAny(wrapped))
}

func TestWrapKeepsStack(t *testing.T) {
	err := Wrapf(errFirst, "order %d", 7)

	assert.Equal(t, "order 7: first", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsStack")
	assert.True(t, Is(err, errFirst))
}
