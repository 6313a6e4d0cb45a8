// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "mentorhub/internal/delivery/context"
	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/domain/service"
	"mentorhub/internal/errors"
	"mentorhub/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// The uniqueness pre-check and the insert share one transaction; the store's
// unique index remains the final arbiter if a concurrent create slips past
// the check.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("register input cannot be nil")
	}

	srv.log(ctx).Info("Starting account registration", slog.String("email", input.Email))

	newAccount := &entity.Account{
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
	}
	if !newAccount.Role.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("role is not valid")
	}

	hashedPassword, err := srv.hasher.Hash(newAccount, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	newAccount.PasswordHash = hashedPassword

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("account registration failed")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by email")
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken.WrapMessage("account registration failed")
			}

			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	srv.log(ctx).Debug("Account registered", slog.Int64("accountID", newAccount.ID))
	srv.publishEvent(ctx, service.EventAccountRegistered, newAccount)

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// Login verifies the credentials for an email and issues a bearer token.
// An unknown email and a failed password check produce the same outcome.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("login input cannot be nil")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	ok, err := srv.ValidatePassword(ctx, account, input.Password)
	if err != nil {
		// A blank candidate password trips the argument guard; to the caller
		// that is just a failed credential check.
		if errors.Is(err, domainerrors.ErrInvalidArgument) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to validate password")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueToken(account.Email, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// GetByID retrieves an account by its numeric ID.
func (srv *accountService) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("failed to get account by id")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// GetByEmail retrieves an account by its exact email address.
func (srv *accountService) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("failed to get account by email")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

// Update replaces exactly the email, full name and role of an existing
// account. ID, CreatedAt and PasswordHash are never touched. Uniqueness is
// NOT re-checked here; a colliding email only surfaces through the store's
// unique index.
func (srv *accountService) Update(ctx context.Context, id int64, patch *usecase.UpdateInput) error {
	if patch == nil {
		return domainerrors.ErrInvalidArgument.WrapMessage("update patch cannot be nil")
	}
	if !patch.Role.IsValid() {
		return domainerrors.ErrInvalidArgument.WrapMessage("role is not valid")
	}

	srv.log(ctx).Info("Starting account update", slog.Int64("accountID", id))

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		existing, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account update failed")
			}

			return errors.Wrap(err, "failed to find account by id")
		}

		existing.Email = patch.Email
		existing.FullName = patch.FullName
		existing.Role = patch.Role

		if err := accountRepo.Update(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken.WrapMessage("account update failed")
			}

			return errors.WithStack(err)
		}
		updated = existing

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute update transaction", slog.Int64("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Debug("Account updated", slog.Int64("accountID", id))
	srv.publishEvent(ctx, service.EventAccountUpdated, updated)

	return nil
}

// ValidatePassword checks a plaintext password against the account's stored hash.
func (srv *accountService) ValidatePassword(_ context.Context, account *entity.Account, password string) (bool, error) {
	if account == nil {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("account cannot be nil")
	}
	if strings.TrimSpace(password) == "" {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("password cannot be empty")
	}

	return srv.hasher.Verify(account, account.PasswordHash, password)
}

// publishEvent emits an account lifecycle event. Delivery is best-effort:
// a publish failure is logged and never fails the account operation.
func (srv *accountService) publishEvent(ctx context.Context, eventType string, account *entity.Account) {
	if srv.publisher == nil || account == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Int64("accountID", account.ID),
			slog.Any("error", err),
		)
	}
}
