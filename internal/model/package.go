package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"bundle-storefront/internal/apperror"

	"github.com/go-playground/validator/v10"
)

// Package is a purchasable bundle. Price is in whole currency units and is
// the only amount ever charged for it.
type Package struct {
	ID            string   `json:"id" gorm:"primaryKey;size:64;not null"`
	Slug          string   `json:"slug" gorm:"size:128;index;not null"` // not unique, see repository.PackageRepository
	Name          string   `json:"name" gorm:"size:255;not null"`
	Tagline       string   `json:"tagline" gorm:"size:255;not null"`
	Description   string   `json:"description" gorm:"type:text;not null"`
	Price         int64    `json:"price" gorm:"not null"`
	OriginalPrice *int64   `json:"originalPrice"` // display only
	HeroImage     string   `json:"heroImage" gorm:"size:255;not null"`
	Category      string   `json:"category" gorm:"size:64;index;not null"`
	Features      []string `json:"features" gorm:"type:text;serializer:json;not null"`
	Includes      []string `json:"includes" gorm:"type:text;serializer:json;not null"`
}

// MaxPrice is the largest catalog price, in whole units. Its minor-unit
// amount stays within the provider's per-charge limit.
const MaxPrice = 999999

// InsertPackage is a Package without its generated id: the admin create
// body and the shape of seed entries.
type InsertPackage struct {
	Slug          string   `json:"slug" yaml:"slug" validate:"required,max=128"`
	Name          string   `json:"name" yaml:"name" validate:"required,max=255"`
	Tagline       string   `json:"tagline" yaml:"tagline" validate:"required,max=255"`
	Description   string   `json:"description" yaml:"description" validate:"required"`
	Price         int64    `json:"price" yaml:"price" validate:"gt=0,lte=999999"`
	OriginalPrice *int64   `json:"originalPrice" yaml:"originalPrice" validate:"omitempty,gtefield=Price"`
	HeroImage     string   `json:"heroImage" yaml:"heroImage" validate:"required"`
	Category      string   `json:"category" yaml:"category" validate:"required,max=64"`
	Features      []string `json:"features" yaml:"features" validate:"required"`
	Includes      []string `json:"includes" yaml:"includes" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate reports every malformed field in one apperror.ErrValidation.
func (p *InsertPackage) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Validation("%v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return apperror.Validation("%s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), lowerFirst(fe.Param()))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ToPackage builds the stored record. Slices are copied so later changes to
// the input never reach a catalog entry.
func (p *InsertPackage) ToPackage(id string) *Package {
	pkg := &Package{
		ID:          id,
		Slug:        p.Slug,
		Name:        p.Name,
		Tagline:     p.Tagline,
		Description: p.Description,
		Price:       p.Price,
		HeroImage:   p.HeroImage,
		Category:    p.Category,
		Features:    slices.Clone(p.Features),
		Includes:    slices.Clone(p.Includes),
	}
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		pkg.OriginalPrice = &original
	}
	return pkg
}

// Clone returns a deep copy so callers cannot mutate a stored entry.
func (p *Package) Clone() *Package {
	c := *p
	c.Features = slices.Clone(p.Features)
	c.Includes = slices.Clone(p.Includes)
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		c.OriginalPrice = &original
	}
	return &c
}
