package screen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/screen"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

func profileFixture(t *testing.T, api *fakeAPI) (*fixture, *screen.Profile) {
	t.Helper()
	api.currentUser = func() (*entity.User, error) {
		return &entity.User{ID: "u-1", Name: "Sultan Admin", Email: "admin@sultan.com", Phone: "+1 555 0100"}, nil
	}
	fx := newFixture(t, api)
	require.NoError(t, fx.session.Login(entity.User{ID: "u-1"}, "tok"))
	p := screen.NewProfile(fx.env)
	fx.drain(p.Mount())
	return fx, p
}

func TestProfile_CargaYGuarda(t *testing.T) {
	fx, p := profileFixture(t, &fakeAPI{
		updateProfile: func(in dto.UpdateProfileRequest) (*entity.User, error) {
			return &entity.User{ID: "u-1", Name: in.Name, Email: in.Email, Phone: in.Phone}, nil
		},
	})
	assert.Equal(t, "Sultan Admin", p.Info.Input.Name)
	assert.Equal(t, navigation.Dashboard, p.Parent())

	p.Info.Input.Name = "Sultan Root"
	fx.drain(p.SaveProfile())
	u, ok := fx.session.User()
	require.True(t, ok)
	assert.Equal(t, "Sultan Root", u.Name)
	assert.Equal(t, "Profile updated", fx.toast(t).Message)
}

func TestProfile_PasswordNoCoincide(t *testing.T) {
	fx, p := profileFixture(t, &fakeAPI{})
	p.Password.Input = dto.UpdatePasswordRequest{CurrentPassword: "password", Password: "newpassword", PasswordConfirmation: "other"}
	assert.Nil(t, p.SavePassword())
	assert.Contains(t, p.Password.Fields, "password_confirmation")
	assert.Zero(t, fx.api.count("UpdatePassword"))
}

func TestProfile_PasswordActualIncorrecta(t *testing.T) {
	fx, p := profileFixture(t, &fakeAPI{
		updatePassword: func(dto.UpdatePasswordRequest) error {
			return validationErr("current_password", "The current password is incorrect.")
		},
	})
	p.Password.Input = dto.UpdatePasswordRequest{CurrentPassword: "nope", Password: "newpassword", PasswordConfirmation: "newpassword"}
	fx.drain(p.SavePassword())
	assert.Equal(t, "The current password is incorrect.", p.Password.Fields["current_password"])
	assert.Equal(t, "nope", p.Password.Input.CurrentPassword, "el formulario se conserva")
}

func TestProfile_Avatar(t *testing.T) {
	var gotName string
	var gotBody []byte
	fx, p := profileFixture(t, &fakeAPI{
		uploadAvatar: func(name string, body []byte) (*dto.AvatarResponse, error) {
			gotName, gotBody = name, body
			return &dto.AvatarResponse{AvatarURL: "/avatars/u-1.png"}, nil
		},
	})

	assert.Nil(t, p.UploadAvatar())
	assert.Contains(t, p.Avatar.Fields, "avatar")

	p.Avatar.Path = filepath.Join(t.TempDir(), "missing.png")
	fx.drain(p.UploadAvatar())
	assert.Equal(t, "The file does not exist.", p.Avatar.Fields["avatar"])

	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte("PNG"), 0o600))
	p.Avatar.Path = path
	fx.drain(p.UploadAvatar())

	assert.Equal(t, "me.png", gotName)
	assert.Equal(t, []byte("PNG"), gotBody)
	assert.Equal(t, "/avatars/u-1.png", p.User.Data.AvatarURL)
	u, _ := fx.session.User()
	assert.Equal(t, "/avatars/u-1.png", u.AvatarURL)
}

func TestProfile_Logout(t *testing.T) {
	fx, p := profileFixture(t, &fakeAPI{})
	fx.navigate(t, navigation.Profile, "")
	p.Logout()
	assert.False(t, fx.session.Authenticated())
	assert.Equal(t, navigation.Dashboard, fx.router.Current())
}
