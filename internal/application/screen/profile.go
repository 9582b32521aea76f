package screen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/navigation"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// ProfileForm datos personales.
type ProfileForm struct {
	Input  dto.UpdateProfileRequest
	Fields listing.FieldErrors
	Saving bool
}

// PasswordForm cambio de contraseña.
type PasswordForm struct {
	Input  dto.UpdatePasswordRequest
	Fields listing.FieldErrors
	Saving bool
}

// AvatarForm subida de avatar desde un archivo local.
type AvatarForm struct {
	Path      string
	Fields    listing.FieldErrors
	Uploading bool
}

// Profile perfil del super admin.
type Profile struct {
	env      *Env
	User     listing.Resource[*entity.User]
	Info     ProfileForm
	Password PasswordForm
	Avatar   AvatarForm
}

func NewProfile(env *Env) *Profile { return &Profile{env: env} }

func (s *Profile) View() navigation.View   { return navigation.Profile }
func (s *Profile) Parent() navigation.View { return navigation.Dashboard }
func (s *Profile) Leave()                  { s.User.Cancel() }

func (s *Profile) Mount() listing.Pending {
	s.Password = PasswordForm{}
	s.Avatar = AvatarForm{}
	api := s.env.API
	return listing.Fetch(s.env.Ctx, &s.User, func(ctx context.Context) (*entity.User, error) {
		return api.CurrentUser(ctx)
	}, func(err error) listing.Pending {
		if err != nil {
			s.env.Fail("load profile", err)
			return nil
		}
		s.fill(*s.User.Data)
		return nil
	})
}

func (s *Profile) fill(u entity.User) {
	s.Info = ProfileForm{Input: dto.UpdateProfileRequest{Name: u.Name, Email: u.Email, Phone: u.Phone}}
	s.env.Session.SetUser(u)
}

// SaveProfile envía nombre, email y teléfono.
func (s *Profile) SaveProfile() listing.Pending {
	f := &s.Info
	if f.Saving {
		return nil
	}
	f.Fields = nil
	in := f.Input
	if err := s.env.Validate.Struct(in); err != nil {
		f.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	f.Saving = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		u, err := api.UpdateProfile(ctx, in)
		return func() listing.Pending {
			f.Saving = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				s.env.Fail("update profile", err)
				return nil
			}
			s.User.Data = u
			s.fill(*u)
			s.env.Notify.Success("Profile updated")
			return nil
		}
	}
}

// SavePassword cambia la contraseña; el formulario se vacía en éxito.
func (s *Profile) SavePassword() listing.Pending {
	f := &s.Password
	if f.Saving {
		return nil
	}
	f.Fields = nil
	in := f.Input
	if err := s.env.Validate.Struct(in); err != nil {
		f.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	f.Saving = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		err := api.UpdatePassword(ctx, in)
		return func() listing.Pending {
			f.Saving = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				s.env.Fail("update password", err)
				return nil
			}
			f.Input = dto.UpdatePasswordRequest{}
			s.env.Notify.Success("Password updated")
			return nil
		}
	}
}

// UploadAvatar sube el archivo de Avatar.Path como multipart.
func (s *Profile) UploadAvatar() listing.Pending {
	f := &s.Avatar
	if f.Uploading {
		return nil
	}
	f.Fields = nil
	path := strings.TrimSpace(f.Path)
	if path == "" {
		f.Fields = listing.FieldErrors{"avatar": "The avatar field is required."}
		return nil
	}
	f.Uploading = true
	api := s.env.API
	ctx := s.env.Ctx
	return func() listing.Commit {
		res, err := uploadFile(ctx, api.UploadAvatar, path)
		return func() listing.Pending {
			f.Uploading = false
			if err != nil {
				if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
					f.Fields = fields
					return nil
				}
				if errors.Is(err, os.ErrNotExist) {
					f.Fields = listing.FieldErrors{"avatar": "The file does not exist."}
					return nil
				}
				s.env.Fail("upload avatar", err)
				return nil
			}
			f.Path = ""
			if s.User.Data != nil {
				u := *s.User.Data
				u.AvatarURL = res.AvatarURL
				s.User.Data = &u
				s.env.Session.SetUser(u)
			}
			s.env.Notify.Success("Avatar updated")
			return nil
		}
	}
}

func uploadFile(ctx context.Context, upload func(context.Context, string, io.Reader) (*dto.AvatarResponse, error), path string) (*dto.AvatarResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := upload(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("avatar %s: %w", filepath.Base(path), err)
	}
	return res, nil
}

// Logout cierra la sesión desde el perfil.
func (s *Profile) Logout() { logout(s.env) }
