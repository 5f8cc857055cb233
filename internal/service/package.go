package service

import (
	"context"

	"bundle-storefront/internal/model"
	"bundle-storefront/internal/repository"
)

type PackageService interface {
	ListPackages(ctx context.Context) ([]*model.Package, error)
	GetPackage(ctx context.Context, slug string) (*model.Package, error)
	CreatePackage(ctx context.Context, input *model.InsertPackage) (*model.Package, error)
}

type packageServiceImpl struct {
	packageRepo repository.PackageRepository
	logger      Logger
}

func NewPackageService(
	packageRepo repository.PackageRepository,
	logger Logger,
) PackageService {
	return &packageServiceImpl{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

func (s *packageServiceImpl) ListPackages(ctx context.Context) ([]*model.Package, error) {
	return s.packageRepo.GetAll(ctx)
}

func (s *packageServiceImpl) GetPackage(ctx context.Context, slug string) (*model.Package, error) {
	return s.packageRepo.GetBySlug(ctx, slug)
}

// CreatePackage does not check for an existing slug; see repository.PackageRepository.
func (s *packageServiceImpl) CreatePackage(ctx context.Context, input *model.InsertPackage) (*model.Package, error) {
	pkg, err := s.packageRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("package %s created with id %s", pkg.Slug, pkg.ID)
	return pkg, nil
}
