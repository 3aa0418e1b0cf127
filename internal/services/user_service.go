package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// GetOrCreateByNumber returns the user with the given WhatsApp number,
// creating it on first contact. A concurrent create from the same number is
// resolved by re-fetching on a duplicate-key insert.
func (s *userService) GetOrCreateByNumber(number string) (*models.User, error) {
	var user models.User
	err := s.db.Where("whatsapp_number = ?", number).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{WhatsAppNumber: number}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("whatsapp_number = ?", number).First(&user).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return &user, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetByNumber returns the user with the given WhatsApp number.
func (s *userService) GetByNumber(number string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("whatsapp_number = ?", number).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
