package service

import (
	"context"
	"time"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// fakeUserRepo is an in-memory UserRepository with programmable failures.
type fakeUserRepo struct {
	byID map[string]*domain.User

	findErr      error
	insertErr    error
	inserted     []*domain.User
	lastLoginIDs []string
	lastLoginErr error
	adminCount   int64
	countErr     error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context, page, limit int, filter ports.UserFilter) (*ports.UserPage, error) {
	return &ports.UserPage{}, nil
}

func (r *fakeUserRepo) Insert(ctx context.Context, user *domain.User) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, user)
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	r.lastLoginIDs = append(r.lastLoginIDs, id)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.adminCount, nil
}

// fakeIdentity is a programmable IdentityProvider.
type fakeIdentity struct {
	nextID    string
	createErr error
	created   []ports.AccountInput

	signInToken string
	signInErr   error

	deleted []string
}

func (f *fakeIdentity) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", domain.ErrInvalidSession
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (string, string, error) {
	if f.signInErr != nil {
		return "", "", f.signInErr
	}
	return f.signInToken, f.nextID, nil
}

func (f *fakeIdentity) CreateUser(ctx context.Context, in ports.AccountInput) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, in)
	return f.nextID, nil
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, subjectID string) error {
	f.deleted = append(f.deleted, subjectID)
	return nil
}

// fakeSchema records procedure invocations and fails the configured ones.
type fakeSchema struct {
	errs  map[string]error
	calls []string
}

func (f *fakeSchema) CreateTable(ctx context.Context, procedure string) error {
	f.calls = append(f.calls, procedure)
	return f.errs[procedure]
}

// fakeCatalog is an in-memory CatalogRepository.
type fakeCatalog struct {
	categories []domain.Category
	items      []domain.MenuItem

	categoryErrs map[string]error
	itemErrs     map[string]error

	refs    []ports.CategoryRef
	refsErr error

	categoryCount, itemCount int64
	countErr                 error
}

func (f *fakeCatalog) UpsertCategory(ctx context.Context, category *domain.Category) error {
	if err := f.categoryErrs[category.Name]; err != nil {
		return err
	}
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCatalog) UpsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := f.itemErrs[item.Name]; err != nil {
		return err
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCatalog) ListCategoryRefs(ctx context.Context) ([]ports.CategoryRef, error) {
	if f.refsErr != nil {
		return nil, f.refsErr
	}
	return f.refs, nil
}

func (f *fakeCatalog) CountCategories(ctx context.Context) (int64, error) {
	return f.categoryCount, f.countErr
}

func (f *fakeCatalog) CountMenuItems(ctx context.Context) (int64, error) {
	return f.itemCount, f.countErr
}

// fakeProber answers table count probes.
type fakeProber struct {
	counts map[string]int64
	errs   map[string]error
}

func (f *fakeProber) CountRows(ctx context.Context, table string) (int64, error) {
	if err := f.errs[table]; err != nil {
		return 0, err
	}
	return f.counts[table], nil
}

// fakeStorage answers bucket enumeration.
type fakeStorage struct {
	buckets []string
	err     error
}

func (f *fakeStorage) ListBuckets(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets, nil
}
