package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/models"
	"rolecrm/internal/pagination"
)

// userService handles the user directory.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser adds a directory entry
func (s *userService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" || input.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}
	if !input.Role.Valid() {
		return nil, apperrors.ErrUnknownRole
	}

	var count int64
	if err := s.db.Unscoped().Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	categories := input.AllowedCategories
	if categories == nil {
		categories = []string{}
	}
	user := &models.User{
		Username:          username,
		Password:          string(hashedPassword),
		Name:              input.Name,
		Email:             strings.ToLower(input.Email),
		Role:              input.Role,
		AllowedCategories: categories,
		IsActive:          true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username, active or not
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.ToLower(strings.TrimSpace(username))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// ListUsers returns a page of the directory ordered by username
func (s *userService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := s.db.Scopes(pagination.Paginate(page)).Order("username").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(users, page.Page, page.PageSize, total)
	return &resp, nil
}

// DeleteUser soft-deletes a user. Their activity entries stay in the log
// but no longer resolve to a role.
func (s *userService) DeleteUser(actorID, id string) error {
	if actorID == id {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "You cannot delete your own account")
	}

	result := s.db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// Directory returns the identities of every user that has not been deleted.
func (s *userService) Directory() ([]access.Identity, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	identities := make([]access.Identity, len(users))
	for i := range users {
		identities[i] = users[i].Identity()
	}
	return identities, nil
}
