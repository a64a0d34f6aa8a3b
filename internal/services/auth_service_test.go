package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
	"github.com/Facu14carrizo/StuntProAR/pkg/apperrors"
)

// fakeUserRepo implements repositories.UserRepository in memory.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.RegisteredUser // keyed by email
	tokens map[string]*models.RefreshToken
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.RegisteredUser),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (f *fakeUserRepo) Create(user *models.RegisteredUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, ok := f.users[email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	f.nextID++
	user.ID = fmt.Sprintf("u%d", f.nextID)
	f.users[email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.RegisteredUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[strings.ToLower(email)]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*models.RegisteredUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rt, ok := f.tokens[token]; ok {
		return rt, nil
	}
	return nil, repositories.ErrTokenNotFound
}

func (f *fakeUserRepo) DeleteRefreshToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) SendWelcome(to, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func validRegister() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName: "Ana Ruiz",
		Email:    "Ana@Example.com",
		Password: "secreto123",
	}
}

func TestRegisterHappyPath(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &recordingMailer{}
	svc := NewAuthService(repo, mail)

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, "Ana Ruiz", resp.User.FullName)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// Stored hash, never the plaintext.
	stored, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secreto123", stored.PasswordHash))
}

func TestRegisterValidatesBeforeStore(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &recordingMailer{})
	ctx := context.Background()

	req := validRegister()
	req.FullName = "   "
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrFullNameRequired)

	req = validRegister()
	req.Email = "sin-arroba"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	req = validRegister()
	req.Email = "dos espacios@mail.com"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	req = validRegister()
	req.Password = "corta"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &recordingMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegister())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &recordingMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &recordingMailer{})
	ctx := context.Background()

	first, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old token is revoked on rotation.
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &recordingMailer{})
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	repo.tokens[resp.RefreshToken].ExpiresAt = time.Now().Add(-time.Hour)

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &recordingMailer{})
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &recordingMailer{})
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, err = svc.CurrentUser(ctx, "desconocido")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
