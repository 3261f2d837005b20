package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/erp-backend/internal/application/auth"
	"github.com/tu-usuario/erp-backend/internal/application/dto"
	"github.com/tu-usuario/erp-backend/internal/domain"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/erp-backend/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

const authTestSecret = "auth-usecase-test-secret"

func newTestAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     "erp-backend-test",
	})
}

// seedUser inserta un usuario directo al fake con el password hasheado.
func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           "11111111-1111-1111-1111-000000000001",
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario Test",
		Role:         role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLogin_CredencialesValidas_EmiteTokenDecodificable(t *testing.T) {
	repo := newFakeUserRepo()
	stored := seedUser(t, repo, "a@x.com", "password123", entity.RoleManager, true)
	uc := newTestAuthUC(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token decodificado debe reflejar el usuario almacenado.
	claims, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.Subject)
	assert.Equal(t, stored.Email, claims.Email)
	assert.Equal(t, entity.RoleManager, claims.Role)

	assert.Equal(t, stored.Email, out.User.Email)
}

func TestLogin_PasswordIncorrecto_Retorna401SinToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "a@x.com", "password123", entity.RoleEmployee, true)
	uc := newTestAuthUC(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out, "no debe emitirse token con password incorrecto")
}

func TestLogin_EmailDesconocido_MismaClaseDeError(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "a@x.com", "password123", entity.RoleEmployee, true)
	uc := newTestAuthUC(repo)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "password123"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "wrongpass"})

	// Email desconocido y password incorrecto comparten sentinel para no
	// revelar qué emails están registrados.
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_RetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "a@x.com", "password123", entity.RoleAdmin, false)
	uc := newTestAuthUC(repo)

	_, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "nuevo@x.com",
		Password: "password123",
		Name:     "Nuevo Usuario",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role, "rol por defecto debe ser employee")

	stored, err := repo.GetByEmail("nuevo@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
	assert.True(t, stored.IsActive)
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "a@x.com", "password123", entity.RoleEmployee, true)
	uc := newTestAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "otropassword",
		Name:     "Duplicado",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Idempotente en fallo: el usuario original no cambió.
	stored, _ := repo.GetByEmail("a@x.com")
	assert.Equal(t, "Usuario Test", stored.Name)
}
