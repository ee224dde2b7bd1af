package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Status   string `json:"newStatus" validate:"required,oneof=accepted rejected"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Status: "accepted", Quantity: 1}))

	err := v.Validate(&sampleRequest{Quantity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newStatus is required")
	assert.Contains(t, err.Error(), "quantity must be at least 1")

	err = v.Validate(&sampleRequest{Status: "shipped", Quantity: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newStatus must be one of: accepted rejected")
}
