package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
	"github.com/sellcontrol/backoffice-api/pkg/jwt"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación de operadores y gestión de cuentas.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, auditRepo repository.AuditRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, auditRepo: auditRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password, genera JWT y retorna token + operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrMissingField
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login exitoso")
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CreateUser crea un operador: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) CreateUser(operatorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrMissingField
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleCajero {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := uc.auditRepo.Record(operatorID, entity.AccionCrearUsuario, "USUARIO", user.ID); err != nil {
		uc.log.Warn().Err(err).Msg("auditoría no registrada")
	}
	return toUserResponse(user), nil
}

// DeactivateUser da de baja lógica un operador.
func (uc *AuthUseCase) DeactivateUser(id string) error {
	return uc.userRepo.Deactivate(id)
}

// ListUsers lista los operadores.
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format(dto.TimeFormat),
	}
}
