package http

import (
	"errors"
	"io"
	nethttp "net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/backoffice"
	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/infrastructure/memory"
)

// maxAvatarBytes tamaño máximo del avatar (2048 KB).
const maxAvatarBytes = 2 << 20

// AuthHandler maneja login, usuario actual y perfil.
type AuthHandler struct {
	uc      *backoffice.AuthUseCase
	avatars *memory.AvatarStore
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *backoffice.AuthUseCase, avatars *memory.AvatarStore) *AuthHandler {
	return &AuthHandler{uc: uc, avatars: avatars}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Credenciales inválidas → 422 con error en "email".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			const msg = "These credentials do not match our records."
			return invalid(c, msg, fieldError("email", msg))
		}
		return handleError(c, err)
	}
	return ok(c, out)
}

// User godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200   {object}  dto.Envelope{data=entity.User}
// @Failure      401   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /user [get]
func (h *AuthHandler) User(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, user)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.UpdateProfileRequest  true  "name, email, phone"
// @Success      200   {object}  dto.Envelope{data=entity.User}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	user, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(envelope{Success: true, Data: user, Message: "Profile updated successfully."})
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.UpdatePasswordRequest  true  "current_password, password, password_confirmation"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /password [put]
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if valid, err := parseAndValidate(c, &in); !valid {
		return err
	}
	if err := h.uc.UpdatePassword(GetUserID(c), in); err != nil {
		return handleError(c, err)
	}
	return c.JSON(envelope{Success: true, Message: "Password updated successfully."})
}

// UploadAvatar godoc
// @Summary      Subir avatar
// @Description  Solo imágenes de hasta 2048 KB; el archivo queda servido en /avatars/{nombre}.
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Security     Bearer
// @Param        avatar  formData  file  true  "imagen de hasta 2048 KB"
// @Success      200   {object}  dto.Envelope{data=dto.AvatarResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /avatar [post]
func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return invalid(c, "", fieldError("avatar", "The avatar field is required."))
	}
	if fh.Size > maxAvatarBytes {
		return invalid(c, "", fieldError("avatar", "The avatar may not be greater than 2048 kilobytes."))
	}
	f, err := fh.Open()
	if err != nil {
		return handleError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil {
		return handleError(c, err)
	}
	contentType := nethttp.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return invalid(c, "", fieldError("avatar", "The avatar must be an image."))
	}

	userID := GetUserID(c)
	name := userID + "-" + uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	h.avatars.Save(name, contentType, data)
	avatarURL := c.BaseURL() + "/avatars/" + name
	if _, err := h.uc.SetAvatar(userID, avatarURL); err != nil {
		return handleError(c, err)
	}
	return ok(c, dto.AvatarResponse{AvatarURL: avatarURL})
}

// Avatar GET /avatars/{name} (público).
func (h *AuthHandler) Avatar(c *fiber.Ctx) error {
	a, found := h.avatars.Get(c.Params("name"))
	if !found {
		return fail(c, fiber.StatusNotFound, msgNotFound)
	}
	c.Set(fiber.HeaderContentType, a.ContentType)
	return c.Send(a.Data)
}
