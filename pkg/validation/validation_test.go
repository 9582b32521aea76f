package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/pkg/validation"
)

type form struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
	Qty                  int    `json:"quantity" validate:"min=0"`
}

func TestMessages(t *testing.T) {
	v := validation.New()
	err := v.Struct(form{Email: "nope", Password: "short", PasswordConfirmation: "x", Qty: -1})
	require.Error(t, err)

	msgs := validation.Messages(err)
	assert.Equal(t, []string{"The email must be a valid email address."}, msgs["email"])
	assert.Equal(t, []string{"The password must be at least 8 characters."}, msgs["password"])
	assert.Equal(t, []string{"The password confirmation does not match."}, msgs["password_confirmation"])
	assert.Equal(t, []string{"The quantity must be at least 0."}, msgs["quantity"])
}

func TestMessages_Required(t *testing.T) {
	err := validation.New().Struct(form{PasswordConfirmation: ""})
	msgs := validation.Messages(err)
	assert.Equal(t, []string{"The email field is required."}, msgs["email"])
}

func TestMessages_NoValidacion(t *testing.T) {
	assert.Nil(t, validation.Messages(errors.New("boom")))
	assert.Nil(t, validation.Messages(nil))
}
