package handler

import (
	"net/http"

	"bundle-storefront/internal/model"
	"bundle-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type PackageHandler struct {
	packageService service.PackageService
}

func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

func (h *PackageHandler) ListPackages(c echo.Context) error {
	ctx := c.Request().Context()

	packages, err := h.packageService.ListPackages(ctx)
	if err != nil {
		return err
	}
	if packages == nil {
		packages = []*model.Package{}
	}

	return c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) GetPackage(c echo.Context) error {
	ctx := c.Request().Context()

	pkg, err := h.packageService.GetPackage(ctx, c.Param("slug"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pkg)
}

// CreatePackage is the admin endpoint for adding a bundle to the catalog.
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.InsertPackage
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	pkg, err := h.packageService.CreatePackage(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, pkg)
}
