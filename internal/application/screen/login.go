package screen

import (
	"errors"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/listing"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
)

// Login formulario de acceso. No es una vista del router: se muestra mientras no hay sesión.
type Login struct {
	env *Env

	Email      string
	Password   string
	Banner     string
	Fields     listing.FieldErrors
	Submitting bool
}

func NewLogin(env *Env) *Login {
	return &Login{env: env}
}

// Submit valida localmente y envía las credenciales.
func (l *Login) Submit() listing.Pending {
	if l.Submitting {
		return nil
	}
	l.Banner = ""
	l.Fields = nil
	req := dto.LoginRequest{Email: l.Email, Password: l.Password}
	if err := l.env.Validate.Struct(req); err != nil {
		l.Fields = listing.FieldErrorsFrom(err)
		return nil
	}
	l.Submitting = true
	ctx := l.env.Ctx
	return func() listing.Commit {
		res, err := l.env.API.Login(ctx, req)
		return func() listing.Pending {
			l.Submitting = false
			if err != nil {
				l.fail(err)
				return nil
			}
			if err := l.env.Session.Login(res.User, res.Token); err != nil {
				l.env.Log.Error().Err(err).Msg("login: guardar sesión")
				l.Banner = "Login failed"
				return nil
			}
			l.Password = ""
			l.env.Router.Reset()
			return nil
		}
	}
}

func (l *Login) fail(err error) {
	if fields := listing.FieldErrorsFrom(err); len(fields) > 0 {
		l.Fields = fields
		return
	}
	l.env.Log.Warn().Err(err).Msg("login fallido")
	switch {
	case errors.Is(err, domain.ErrNetwork):
		l.Banner = "Failed to connect to server"
	default:
		msg := Message(err)
		if msg == "" || msg == domain.DefaultMessage {
			msg = "Login failed"
		}
		l.Banner = msg
	}
}
