package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserInput struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	SupervisorID *uint  `json:"supervisor_id"`
	Faculty      string `json:"faculty"`
	Major        string `json:"major"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
}

func validRole(r string) bool {
	return r == RoleAdmin || r == RoleDirector || r == RoleUser
}

func (s *UserService) List(query string, page, limit int) (*Paginated, error) {
	page, limit = normalizePage(page, limit)

	q := s.db.Model(&models.User{})
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := q.Order("code ASC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	return &Paginated{Data: users, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}

func (s *UserService) Create(input UserInput) (*models.User, error) {
	if strings.TrimSpace(input.Code) == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: code and password are required", ErrValidation)
	}
	if !validRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}
	if err := s.checkSupervisor(0, input.SupervisorID); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Code:         strings.TrimSpace(input.Code),
		Name:         input.Name,
		Role:         input.Role,
		SupervisorID: input.SupervisorID,
		Faculty:      input.Faculty,
		Major:        input.Major,
		Phone:        input.Phone,
		Password:     hashed,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: code %q is already in use", ErrValidation, user.Code)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uint, input UserInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		if !validRole(input.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
		}
		user.Role = input.Role
	}
	// supervisor link only changes when the patch carries it; an explicit 0
	// clears the link
	if input.SupervisorID != nil {
		if *input.SupervisorID == 0 {
			user.SupervisorID = nil
		} else {
			if err := s.checkSupervisor(id, input.SupervisorID); err != nil {
				return nil, err
			}
			user.SupervisorID = input.SupervisorID
		}
	}
	if input.Faculty != "" {
		user.Faculty = input.Faculty
	}
	if input.Major != "" {
		user.Major = input.Major
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account; self-deletion is disallowed.
func (s *UserService) Delete(id uint, callerCode string) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Code == callerCode {
		return fmt.Errorf("%w: cannot delete your own account", ErrValidation)
	}
	return s.db.Delete(&user).Error
}

// checkSupervisor enforces the depth-1 supervision tree: a supervisor cannot
// have a supervisor, and a user who already supervises others cannot be
// assigned one.
func (s *UserService) checkSupervisor(userID uint, supervisorID *uint) error {
	if supervisorID == nil {
		return nil
	}
	if userID != 0 && *supervisorID == userID {
		return fmt.Errorf("%w: a user cannot supervise themselves", ErrValidation)
	}

	var sup models.User
	if err := s.db.First(&sup, *supervisorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: supervisor %d does not exist", ErrValidation, *supervisorID)
		}
		return err
	}
	if sup.SupervisorID != nil {
		return fmt.Errorf("%w: supervisor cannot have a supervisor of their own", ErrValidation)
	}

	if userID != 0 {
		var supervisees int64
		if err := s.db.Model(&models.User{}).Where("supervisor_id = ?", userID).Count(&supervisees).Error; err != nil {
			return err
		}
		if supervisees > 0 {
			return fmt.Errorf("%w: a supervising user cannot be assigned a supervisor", ErrValidation)
		}
	}
	return nil
}
