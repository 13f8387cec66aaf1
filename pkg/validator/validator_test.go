package validator

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addLineBody struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, Validate(addLineBody{ProductID: 1, Quantity: 2}))
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	err := Validate(addLineBody{})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Contains(t, fields, "ProductID")
	assert.Contains(t, fields, "Quantity")
	assert.Equal(t, "is required", fields["ProductID"])
}

func TestValidate_RangeViolations(t *testing.T) {
	type body struct {
		Quantity int     `validate:"gte=1,lte=100"`
		Rating   float64 `validate:"gte=0,lte=5"`
	}

	err := Validate(body{Quantity: 200, Rating: 7})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	fields := valErr.Fields()
	assert.Equal(t, "must be less than or equal to 100", fields["Quantity"])
	assert.Equal(t, "must be less than or equal to 5", fields["Rating"])
}

func TestValidationError_ErrorJoinsFields(t *testing.T) {
	err := Validate(addLineBody{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProductID")
	assert.Contains(t, err.Error(), "is required")
}

func TestDecodeAndValidate_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/cart/add", bytes.NewBufferString(`{"productId":1,"quantity":2}`))

	var body addLineBody
	require.NoError(t, DecodeAndValidate(req, &body))
	assert.Equal(t, int64(1), body.ProductID)
	assert.Equal(t, 2, body.Quantity)
}

func TestDecodeAndValidate_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/cart/add", bytes.NewBufferString(`{"productId":`))

	var body addLineBody
	err := DecodeAndValidate(req, &body)
	require.Error(t, err)

	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr), "decode failures are not validation errors")
}

func TestDecodeAndValidate_InvalidValues(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/cart/add", bytes.NewBufferString(`{"productId":1,"quantity":-3}`))

	var body addLineBody
	err := DecodeAndValidate(req, &body)
	require.Error(t, err)

	var valErr *ValidationError
	assert.True(t, errors.As(err, &valErr))
}
