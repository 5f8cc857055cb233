package repository

import (
	"context"
	"errors"
	"fmt"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageRepository is the product catalog consumed by the payment flow.
//
// Create assigns a fresh id and validates its input but does not check slug
// uniqueness; keeping slugs unique is the caller's job. Lookups that miss
// return an error wrapping apperror.ErrNotFound.
type PackageRepository interface {
	Seed(ctx context.Context, packages []*model.InsertPackage) error
	GetAll(ctx context.Context) ([]*model.Package, error)
	GetBySlug(ctx context.Context, slug string) (*model.Package, error)
	GetByID(ctx context.Context, id string) (*model.Package, error)
	Create(ctx context.Context, input *model.InsertPackage) (*model.Package, error)
}

// newPackageID returns a UUIDv7. Its string form sorts in creation order,
// so ordering by id is insertion order in every backend.
func newPackageID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type packageRepoImpl struct {
	db *gorm.DB
}

func NewGormPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepoImpl{
		db: db,
	}
}

// Seed inserts the packages only into an empty table, so restarting against
// an existing database does not duplicate the catalog.
func (r *packageRepoImpl) Seed(ctx context.Context, packages []*model.InsertPackage) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Package{}).Count(&count).Error; err != nil {
		return apperror.Upstream("count packages", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]*model.Package, len(packages))
	for i, input := range packages {
		if err := input.Validate(); err != nil {
			return fmt.Errorf("seed package %d: %w", i, err)
		}
		rows[i] = input.ToPackage(newPackageID())
	}
	if len(rows) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return apperror.Upstream("seed packages", err)
	}
	return nil
}

func (r *packageRepoImpl) GetAll(ctx context.Context) ([]*model.Package, error) {
	var packages []*model.Package
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&packages).
		Error

	if err != nil {
		return nil, apperror.Upstream("list packages", err)
	}

	return packages, nil
}

func (r *packageRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Package, error) {
	return r.first(ctx, "slug", slug)
}

func (r *packageRepoImpl) GetByID(ctx context.Context, id string) (*model.Package, error) {
	return r.first(ctx, "id", id)
}

// first returns the earliest inserted match, the same entry the memory store
// resolves a duplicate slug to.
func (r *packageRepoImpl) first(ctx context.Context, column, value string) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("id").
		Take(&pkg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("package with %s %q", column, value)
		}
		return nil, apperror.Upstream("get package by "+column, err)
	}

	return &pkg, nil
}

func (r *packageRepoImpl) Create(ctx context.Context, input *model.InsertPackage) (*model.Package, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pkg := input.ToPackage(newPackageID())
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return nil, apperror.Upstream("create package", err)
	}

	return pkg, nil
}
