package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/service"
	"mentorhub/internal/errors"
	"mentorhub/internal/infra/auth"
	"mentorhub/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	repo      *fakeAccountRepo
	tokens    *fakeTokenService
	publisher *recordingPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	repo := newFakeAccountRepo()
	tokens := &fakeTokenService{}
	publisher := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(AccountServiceParams{
		TxManager:    &fakeTxManager{repo: repo},
		AccountRepo:  repo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Publisher:    publisher,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:   svc,
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
	}
}

func registerTestAccount(t *testing.T, fx accountServiceFixtures, email, password string, role entity.Role) *entity.Account {
	t.Helper()

	out, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    email,
		FullName: "Test Account",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Account)

	return out.Account
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	out, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "mentor@example.com",
		FullName: "Maya Mentor",
		Password: "s3cret-pass",
		Role:     entity.RoleMentor,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Account)
	assert.Positive(t, out.Account.ID)
	assert.Equal(t, "mentor@example.com", out.Account.Email)
	assert.Equal(t, entity.RoleMentor, out.Account.Role)

	// The stored credential must be a salted hash, never the plaintext.
	assert.NotEqual(t, "s3cret-pass", out.Account.PasswordHash)
	ok, err := fx.service.ValidatePassword(context.Background(), out.Account, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "taken@example.com", "first-pass", entity.RoleStudent)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		FullName: "Second Account",
		Password: "second-pass",
		Role:     entity.RoleStudent,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailTaken.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "Email is already taken", appErr.Message())
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "someone@example.com",
		FullName: "Someone",
		Password: "password123",
		Role:     entity.Role("Superuser"),
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidArgument.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Register_PublishesEvent(t *testing.T) {
	fx := createTestAccountService(t)
	account := registerTestAccount(t, fx, "mentor@example.com", "s3cret-pass", entity.RoleMentor)

	events := fx.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventAccountRegistered, events[0].Type)
	assert.Equal(t, account.ID, events[0].AccountID)
	assert.Equal(t, "mentor@example.com", events[0].Email)
}

func TestAccountService_Register_PublishFailureDoesNotFailRegistration(t *testing.T) {
	fx := createTestAccountService(t)
	fx.publisher.err = errors.New("broker unavailable")

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "mentor@example.com",
		FullName: "Maya Mentor",
		Password: "s3cret-pass",
		Role:     entity.RoleMentor,
	})

	require.NoError(t, err)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "student@example.com", "correct-horse", entity.RoleStudent)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "student@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-student@example.com", out.Token)
	assert.Equal(t, "student@example.com", fx.tokens.lastEmail)
	assert.Equal(t, entity.RoleStudent, fx.tokens.lastRole)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "student@example.com", "correct-horse", entity.RoleStudent)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "student@example.com",
		Password: "wrong-horse",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestAccountService_Login_BlankPasswordIsGenericFailure(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "student@example.com", "correct-horse", entity.RoleStudent)

	// Whitespace survives length validation at the boundary but must not be
	// distinguishable from any other failed credential check.
	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "student@example.com",
		Password: "        ",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestAccountService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "student@example.com", "correct-horse", entity.RoleStudent)

	_, unknownErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	_, wrongPassErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "student@example.com",
		Password: "wrong-horse",
	})

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongPassErr, &wrongApp)
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.GetByID(context.Background(), 404)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User not found", appErr.Message())
}

func TestAccountService_GetByEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)
	created := registerTestAccount(t, fx, "admin@example.com", "admin-pass", entity.RoleAdmin)

	account, err := fx.service.GetByEmail(context.Background(), "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)
	assert.Equal(t, entity.RoleAdmin, account.Role)
}

func TestAccountService_GetByEmail_ExactMatchOnly(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestAccount(t, fx, "admin@example.com", "admin-pass", entity.RoleAdmin)

	_, err := fx.service.GetByEmail(context.Background(), "Admin@Example.com")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User not found", appErr.Message())
}

func TestAccountService_Update_Success(t *testing.T) {
	fx := createTestAccountService(t)
	created := registerTestAccount(t, fx, "old@example.com", "some-pass", entity.RoleStudent)
	originalHash := created.PasswordHash

	err := fx.service.Update(context.Background(), created.ID, &usecase.UpdateInput{
		Email:    "new@example.com",
		FullName: "Renamed Account",
		Role:     entity.RoleMentor,
	})
	require.NoError(t, err)

	updated, err := fx.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Renamed Account", updated.FullName)
	assert.Equal(t, entity.RoleMentor, updated.Role)

	// Identity and credentials survive the update untouched.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, originalHash, updated.PasswordHash)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.Update(context.Background(), 404, &usecase.UpdateInput{
		Email:    "ghost@example.com",
		FullName: "Ghost",
		Role:     entity.RoleStudent,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User not found", appErr.Message())
}

func TestAccountService_Update_NilPatch(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.Update(context.Background(), 1, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidArgument.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_ValidatePassword_Guards(t *testing.T) {
	fx := createTestAccountService(t)
	account := registerTestAccount(t, fx, "guard@example.com", "guard-pass", entity.RoleStudent)

	_, err := fx.service.ValidatePassword(context.Background(), nil, "guard-pass")
	require.Error(t, err)

	_, err = fx.service.ValidatePassword(context.Background(), account, "   ")
	require.Error(t, err)

	ok, err := fx.service.ValidatePassword(context.Background(), account, "not-the-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}
