package screen_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/api"
)

func validationErr(field, msg string) error {
	return &api.Error{Kind: api.KindValidation, Status: http.StatusUnprocessableEntity,
		Message: "The given data was invalid.", Fields: map[string][]string{field: {msg}}}
}

func TestFail_ToastConMensajeDelServidor(t *testing.T) {
	fx := newFixture(t, &fakeAPI{})
	fx.env.Fail("op", fmt.Errorf("wrap: %w", &api.Error{Kind: api.KindServer, Status: 409, Message: "Store is locked"}))
	toast := fx.toast(t)
	assert.Equal(t, notify.Error, toast.Kind)
	assert.Equal(t, "Store is locked", toast.Message)
}

func TestFail_ErrorGenerico(t *testing.T) {
	fx := newFixture(t, &fakeAPI{})
	fx.env.Fail("op", errors.New("disk full"))
	assert.Equal(t, domain.DefaultMessage, fx.toast(t).Message)
}

func TestFail_SilenciosoEnCancelacionY401(t *testing.T) {
	fx := newFixture(t, &fakeAPI{})
	fx.env.Fail("op", fmt.Errorf("x: %w", context.Canceled))
	fx.env.Fail("op", &api.Error{Kind: api.KindUnauthorized, Status: 401, Message: "Unauthenticated"})
	fx.env.Fail("op", nil)
	_, ok := fx.notify.Toast()
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "The given data was invalid.", screen.Message(validationErr("email", "taken")))
	assert.Equal(t, domain.DefaultMessage, screen.Message(errors.New("x")))
}
