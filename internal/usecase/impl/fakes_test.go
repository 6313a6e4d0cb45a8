package impl

import (
	"context"
	"sync"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/domain/service"
)

// fakeAccountRepo is an in-memory AccountRepository for service tests.
type fakeAccountRepo struct {
	mu       sync.Mutex
	nextID   int64
	byID     map[int64]*entity.Account
	byEmail  map[string]*entity.Account
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		nextID:  1,
		byID:    make(map[int64]*entity.Account),
		byEmail: make(map[string]*entity.Account),
	}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	account, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	clone := *account

	return &clone, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	clone := *account

	return &clone, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}
	if _, exists := r.byEmail[account.Email]; exists {
		return repository.ErrEmailTaken
	}
	account.ID = r.nextID
	r.nextID++
	clone := *account
	r.byID[account.ID] = &clone
	r.byEmail[account.Email] = &clone

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}
	existing, ok := r.byID[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	if other, exists := r.byEmail[account.Email]; exists && other.ID != account.ID {
		return repository.ErrEmailTaken
	}
	delete(r.byEmail, existing.Email)
	clone := *account
	r.byID[account.ID] = &clone
	r.byEmail[account.Email] = &clone

	return nil
}

// fakeTxManager runs the transactional function directly against the shared repo.
type fakeTxManager struct {
	repo *fakeAccountRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepositoryFactory{repo: m.repo})
}

type fakeRepositoryFactory struct {
	repo *fakeAccountRepo
}

func (f *fakeRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.repo
}

// fakeTokenService issues deterministic tokens and records the last request.
type fakeTokenService struct {
	issueErr  error
	lastEmail string
	lastRole  entity.Role
}

func (s *fakeTokenService) IssueToken(email string, role entity.Role) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.lastEmail = email
	s.lastRole = role

	return "token-for-" + email, nil
}

func (s *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.AccountEvent
	err    error
}

func (p *recordingPublisher) PublishAccountEvent(_ context.Context, event *service.AccountEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*service.AccountEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.AccountEvent(nil), p.events...)
}
