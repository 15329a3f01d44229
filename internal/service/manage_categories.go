package service

import (
	"github.com/inkwellgoods/storefront/internal/model"
	"github.com/inkwellgoods/storefront/internal/repository"
	"github.com/inkwellgoods/storefront/internal/util"
)

// CategoryInput carries the category form fields
type CategoryInput struct {
	Name        string `json:"name" form:"name"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
}

// ListCategories returns all categories for the console, alphabetically
func (s *Manage) ListCategories() ([]model.Category, error) {
	return s.categories.List(repository.NameAsc)
}

// GetCategory returns one category by id
func (s *Manage) GetCategory(id uint) (*model.Category, error) {
	return s.categories.GetByID(id)
}

// CreateCategory inserts a new category. Name and slug must both be unique;
// the slug is derived from the name when absent.
func (s *Manage) CreateCategory(in CategoryInput) (*model.Category, error) {
	slug, err := s.validateCategory(in, 0)
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory replaces a category's fields
func (s *Manage) UpdateCategory(id uint, in CategoryInput) (*model.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug, err := s.validateCategory(in, id)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Slug = slug
	category.Description = in.Description

	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Every product it owns, and transitively
// their images and variants, go with it. Irreversible.
func (s *Manage) DeleteCategory(id uint) error {
	return s.categories.Delete(id)
}

func (s *Manage) validateCategory(in CategoryInput, excludeID uint) (string, error) {
	if in.Name == "" {
		return "", invalid("name", "is required")
	}

	slug := in.Slug
	if slug == "" {
		slug = in.Name
	}
	slug = util.Slugify(slug)
	if slug == "" {
		return "", invalid("name", "cannot be reduced to a slug")
	}

	count, err := s.categories.CountByName(in.Name, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrConflict
	}

	count, err = s.categories.CountBySlug(slug, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrConflict
	}
	return slug, nil
}
