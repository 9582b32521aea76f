// Package backoffice contiene los casos de uso del backend stub que sirve a la consola.
package backoffice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/dto"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
	"github.com/videeinfotech/sultan-super-admin-app/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegisterInput alta de un usuario de la consola.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// AuthUseCase casos de uso de autenticación y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailTaken si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear password: %w", err)
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleSuperAdmin
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		Role:         role,
		Phone:        in.Phone,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales inválidas → ErrUnauthorized; rol distinto de super_admin → ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Role != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *user}, nil
}

// CurrentUser devuelve el usuario del token.
func (uc *AuthUseCase) CurrentUser(userID string) (*entity.User, error) {
	return uc.find(userID)
}

// UpdateProfile cambia nombre, email y teléfono.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*entity.User, error) {
	user, err := uc.find(userID)
	if err != nil {
		return nil, err
	}
	user.Name = strings.TrimSpace(in.Name)
	user.Email = strings.TrimSpace(in.Email)
	user.Phone = strings.TrimSpace(in.Phone)
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifica la contraseña actual y guarda la nueva.
func (uc *AuthUseCase) UpdatePassword(userID string, in dto.UpdatePasswordRequest) error {
	user, err := uc.find(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hashear password: %w", err)
	}
	user.PasswordHash = string(hash)
	return uc.userRepo.Update(user)
}

// SetAvatar guarda la URL pública del avatar subido.
func (uc *AuthUseCase) SetAvatar(userID, avatarURL string) (*entity.User, error) {
	user, err := uc.find(userID)
	if err != nil {
		return nil, err
	}
	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) find(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
