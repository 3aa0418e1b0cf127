package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Find returns the category matching (user, name, type).
// Returns ErrCategoryNotFound if no such category exists.
func (s *categoryService) Find(userID uint, name string, categoryType models.TransactionType) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("user_id = ? AND name = ? AND type = ?", userID, strings.ToLower(name), categoryType).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// FindOrCreate returns the category matching (user, name, type), creating it
// if absent. A concurrent create of the same triple loses the insert on the
// unique index and re-fetches the winner's row.
func (s *categoryService) FindOrCreate(userID uint, name string, categoryType models.TransactionType) (*models.Category, error) {
	category, err := s.Find(userID, name, categoryType)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return nil, err
	}

	created := &models.Category{UserID: userID, Name: strings.ToLower(name), Type: categoryType}
	if err := s.db.Create(created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Find(userID, name, categoryType)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

// Create creates a new category.
// Returns ErrCategoryExists if the (user, name, type) triple already exists.
func (s *categoryService) Create(userID uint, name string, categoryType models.TransactionType) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if _, err := s.Find(userID, name, categoryType); err == nil {
		return nil, apperrors.ErrCategoryExists
	} else if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return nil, err
	}

	category := &models.Category{UserID: userID, Name: strings.ToLower(name), Type: categoryType}
	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// Rename renames the category matching (user, oldName, type) in place.
// Returns ErrCategoryNotFound if no such category exists.
func (s *categoryService) Rename(userID uint, oldName, newName string, categoryType models.TransactionType) (*models.Category, error) {
	category, err := s.Find(userID, oldName, categoryType)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(category).Update("name", strings.ToLower(newName)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// Delete removes the category matching (user, name, type).
// Returns ErrCategoryNotFound if absent and ErrCategoryInUse while any
// transaction still references the category.
func (s *categoryService) Delete(userID uint, name string, categoryType models.TransactionType) error {
	category, err := s.Find(userID, name, categoryType)
	if err != nil {
		return err
	}

	var linked int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ?", category.ID).
		Count(&linked).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if linked > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
