package repository

import (
	"context"
	"fmt"
	"sync"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/model"
)

// memoryPackageRepo keeps the catalog in process memory. One RWMutex guards
// every map and the insertion order so no reader sees a half-inserted entry.
type memoryPackageRepo struct {
	mu     sync.RWMutex
	byID   map[string]*model.Package
	bySlug map[string]string // slug -> id of the first package inserted with it
	order  []string
}

func NewMemoryPackageRepository() PackageRepository {
	return &memoryPackageRepo{
		byID:   make(map[string]*model.Package),
		bySlug: make(map[string]string),
	}
}

func (r *memoryPackageRepo) Seed(ctx context.Context, packages []*model.InsertPackage) error {
	for i, input := range packages {
		if _, err := r.Create(ctx, input); err != nil {
			return fmt.Errorf("seed package %d: %w", i, err)
		}
	}
	return nil
}

func (r *memoryPackageRepo) GetAll(_ context.Context) ([]*model.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	packages := make([]*model.Package, 0, len(r.order))
	for _, id := range r.order {
		packages = append(packages, r.byID[id].Clone())
	}
	return packages, nil
}

func (r *memoryPackageRepo) GetBySlug(_ context.Context, slug string) (*model.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, apperror.NotFound("package with slug %q", slug)
	}
	return r.byID[id].Clone(), nil
}

func (r *memoryPackageRepo) GetByID(_ context.Context, id string) (*model.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pkg, ok := r.byID[id]
	if !ok {
		return nil, apperror.NotFound("package with id %q", id)
	}
	return pkg.Clone(), nil
}

func (r *memoryPackageRepo) Create(_ context.Context, input *model.InsertPackage) (*model.Package, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pkg := input.ToPackage(newPackageID())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[pkg.ID] = pkg
	r.order = append(r.order, pkg.ID)
	if _, taken := r.bySlug[pkg.Slug]; !taken {
		r.bySlug[pkg.Slug] = pkg.ID
	}

	return pkg.Clone(), nil
}
