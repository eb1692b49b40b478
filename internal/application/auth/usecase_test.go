package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/dto"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/cart"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/cazuela-chapina-api/pkg/jwt"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct{ byEmail map[string]*entity.User }

func (r *fakeUsers) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}
func (r *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type fakeBranches struct{}

func (fakeBranches) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	if id == "b-1" {
		return &entity.Branch{ID: "b-1", Name: "Central"}, nil
	}
	return nil, nil
}
func (fakeBranches) List(context.Context) ([]*entity.Branch, error) { return nil, nil }

type memSessions struct{ items map[string]*entity.Session }

func (s *memSessions) Create(_ context.Context, sess *entity.Session) error {
	s.items[sess.ID] = sess
	return nil
}
func (s *memSessions) Get(_ context.Context, id string) (*entity.Session, error) {
	if sess, ok := s.items[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrSessionNotFound
}
func (s *memSessions) Delete(_ context.Context, id string) error {
	delete(s.items, id)
	return nil
}

type memCarts struct{ deleted []string }

func (c *memCarts) Load(context.Context, string) (*cart.Cart, error) { return cart.New(), nil }
func (c *memCarts) Save(context.Context, string, *cart.Cart) error   { return nil }
func (c *memCarts) Delete(_ context.Context, id string) error {
	c.deleted = append(c.deleted, id)
	return nil
}

const secret = "auth-test-secret"

func newAuth(t *testing.T) (*AuthUseCase, *fakeUsers, *memSessions, *memCarts) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("chapina123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{byEmail: map[string]*entity.User{
		"ana@cazuela.gt":  {ID: "u-1", BranchID: "b-1", Email: "ana@cazuela.gt", PasswordHash: string(hash), Name: "Ana", Role: entity.RoleCashier, Status: "active"},
		"luis@cazuela.gt": {ID: "u-2", BranchID: "b-1", Email: "luis@cazuela.gt", PasswordHash: string(hash), Name: "Luis", Role: entity.RoleCook, Status: "inactive"},
	}}
	sessions := &memSessions{items: map[string]*entity.Session{}}
	carts := &memCarts{}
	uc := NewAuthUseCase(users, fakeBranches{}, sessions, carts, JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, logger.Nop())
	return uc, users, sessions, carts
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CreaSesionYToken(t *testing.T) {
	uc, _, sessions, _ := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: " ANA@cazuela.gt ", Password: "chapina123"})
	require.NoError(t, err)
	require.Contains(t, sessions.items, res.SessionID)
	assert.Equal(t, "b-1", sessions.items[res.SessionID].BranchID)
	assert.Equal(t, entity.RoleCashier, res.User.Role)

	claims, err := pkgjwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, claims.SessionID)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestLogin_Errores(t *testing.T) {
	uc, _, sessions, _ := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@cazuela.gt", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@cazuela.gt", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "luis@cazuela.gt", Password: "chapina123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Empty(t, sessions.items)
}

func TestLogout_BorraSesionYCarrito(t *testing.T) {
	uc, _, sessions, carts := newAuth(t)
	ctx := context.Background()
	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@cazuela.gt", Password: "chapina123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, res.SessionID))
	assert.NotContains(t, sessions.items, res.SessionID)
	assert.Equal(t, []string{res.SessionID}, carts.deleted)

	assert.ErrorIs(t, uc.Logout(ctx, ""), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser(t *testing.T) {
	uc, users, _, _ := newAuth(t)
	ctx := context.Background()

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{BranchID: "b-1", Email: "Rosa@Cazuela.gt", Password: "supersecreta", Role: entity.RoleCook})
	require.NoError(t, err)
	assert.Equal(t, "rosa@cazuela.gt", out.Email)
	assert.Equal(t, "rosa@cazuela.gt", out.Name)
	stored := users.byEmail["rosa@cazuela.gt"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecreta")))
}

func TestRegisterUser_Errores(t *testing.T) {
	uc, _, _, _ := newAuth(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RegisterRequest
		want error
	}{
		{"rol inválido", dto.RegisterRequest{BranchID: "b-1", Email: "x@y.gt", Password: "12345678", Role: "gerente"}, domain.ErrInvalidInput},
		{"password corto", dto.RegisterRequest{BranchID: "b-1", Email: "x@y.gt", Password: "123", Role: entity.RoleCashier}, domain.ErrInvalidInput},
		{"email sin arroba", dto.RegisterRequest{BranchID: "b-1", Email: "xy.gt", Password: "12345678", Role: entity.RoleCashier}, domain.ErrInvalidInput},
		{"email duplicado", dto.RegisterRequest{BranchID: "b-1", Email: "ana@cazuela.gt", Password: "12345678", Role: entity.RoleCashier}, domain.ErrEmailAlreadyExists},
		{"sucursal inexistente", dto.RegisterRequest{BranchID: "b-9", Email: "x@y.gt", Password: "12345678", Role: entity.RoleCashier}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
