package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dgarciat/tirestock-api/internal/application/dto"
	"github.com/dgarciat/tirestock-api/internal/domain"
	"github.com/dgarciat/tirestock-api/internal/domain/entity"
	"github.com/dgarciat/tirestock-api/internal/domain/repository"
	"github.com/dgarciat/tirestock-api/pkg/config"
	"github.com/dgarciat/tirestock-api/pkg/jwt"
	"github.com/dgarciat/tirestock-api/pkg/logger"
)

// UseCase implementa registro y login de usuarios con bcrypt y JWT.
type UseCase struct {
	tx     repository.TxRunner
	users  repository.UserRepository
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(tx repository.TxRunner, users repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, users: users, jwtCfg: jwtCfg, log: log}
}

// Register da de alta un usuario. El email es único (case-insensitive) y
// el rol, si no se indica, es staff.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		return dto.UserResponse{}, domain.Validationf("faltan campos requeridos: email, password, name")
	}
	if len(req.Password) < 8 {
		return dto.UserResponse{}, domain.Validationf("la contraseña debe tener al menos 8 caracteres")
	}
	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return dto.UserResponse{}, domain.Validationf("rol inválido: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	now := time.Now()
	u := &entity.User{
		ID:           entity.NewID("user"),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func() error {
		existing, err := uc.users.FindByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		return uc.users.Create(u)
	}, repository.CollectionUsers)
	if err != nil {
		return dto.UserResponse{}, err
	}

	uc.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("usuario registrado")
	return toUserResponse(u), nil
}

// Login valida credenciales y emite un JWT. No distingue entre usuario
// inexistente y contraseña incorrecta.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return dto.LoginResponse{}, domain.Validationf("faltan campos requeridos: email, password")
	}

	var u *entity.User
	err := uc.tx.Run(ctx, func() error {
		var err error
		u, err = uc.users.FindByEmail(email)
		return err
	}, repository.CollectionUsers)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	if u == nil {
		return dto.LoginResponse{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return dto.LoginResponse{}, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	uc.log.Info().Str("user_id", u.ID).Msg("login exitoso")
	return dto.LoginResponse{Token: token, User: toUserResponse(u)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
