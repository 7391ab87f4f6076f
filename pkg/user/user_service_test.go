package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/entities"
	"github.com/saulluiz/api-recipe-generator/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entities.User

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(toEmail string, subject string, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func newTestUserService(repo UserRepository, mailer *fakeMailer) UserService {
	return NewUserService(repo, jwt.NewJWTService(), NewBcryptHasher(), mailer)
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username: "cook",
		Email:    "cook@example.com",
		Password: "sup3rsecret",
		FullName: "Chef Cook",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	service := newTestUserService(repo, mailer)

	res, err := service.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, "cook", res.Username)
	assert.False(t, res.Verified)
	assert.Equal(t, []string{"cook@example.com"}, mailer.sent)

	stored, err := repo.GetByUsername(context.Background(), "cook")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", stored.Password, "password must be stored hashed")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "other@example.com"
	_, err = service.Register(context.Background(), dup)

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "othercook"
	_, err = service.Register(context.Background(), dup)

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_MailFailureIsNotFatal(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{err: errors.New("smtp down")})

	_, err := service.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Len(t, repo.users, 1)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "cook",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.NotEmpty(t, res.AccessToken)

	stored, err := repo.GetByUsername(context.Background(), "cook")
	require.NoError(t, err)
	sub, err := jwt.NewJWTService().GetSubject(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Username: "cook",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	service := newTestUserService(newFakeUserRepo(), &fakeMailer{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	created, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	res, err := service.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", res.Email)

	_, err = service.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerifyEmail_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo, &fakeMailer{})

	created, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.False(t, created.Verified)

	token, err := jwt.NewJWTService().GenerateMailToken(map[string]any{"email": "cook@example.com"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(context.Background(), token))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
}

func TestVerifyEmail_BadToken(t *testing.T) {
	service := newTestUserService(newFakeUserRepo(), &fakeMailer{})

	err := service.VerifyEmail(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)

	assert.NoError(t, hasher.Compare(hashed, "secret"))
	assert.Error(t, hasher.Compare(hashed, "other"))
}
