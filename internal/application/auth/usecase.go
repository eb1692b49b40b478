package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/repository"
	"github.com/jhoicas/cazuela-chapina-api/pkg/jwt"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
// La sesión vive en el SessionStore; el token solo referencia su ID.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
	sessions   ports.SessionStore
	carts      ports.CartStore
	jwtCfg     JWTConfig
	log        *logger.Logger
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	sessions ports.SessionStore,
	carts ports.CartStore,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		branchRepo: branchRepo,
		sessions:   sessions,
		carts:      carts,
		jwtCfg:     jwtCfg,
		log:        log.With("component", "auth"),
		now:        time.Now,
	}
}

// RegisterUser crea un empleado: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") || len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	branch, err := uc.branchRepo.GetByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound // sucursal no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		BranchID:     branch.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, crea la sesión y emite un JWT que la referencia.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		BranchID:  user.BranchID,
		Role:      user.Role,
		Name:      user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		UserID:    user.ID,
		BranchID:  user.BranchID,
		Role:      user.Role,
		SessionID: session.ID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("session_id", session.ID).Str("branch_id", user.BranchID).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		User:      *toUserResponse(user),
	}, nil
}

// Logout destruye la sesión y su carrito. Tokens emitidos para esa sesión dejan de servir.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	if err := uc.carts.Delete(ctx, sessionID); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("carrito de la sesión no eliminado")
	}
	return nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		BranchID:  u.BranchID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
