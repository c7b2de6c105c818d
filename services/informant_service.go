package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type InformantService struct {
	db *gorm.DB
}

func NewInformantService(db *gorm.DB) *InformantService {
	return &InformantService{db: db}
}

// InformantInput carries the survey form as submitted: every numeric field
// arrives as a string and is sanitized here ("" persists as NULL).
type InformantInput struct {
	CodeSv          string `json:"code_sv"`
	FullName        string `json:"full_name"`
	Age             string `json:"age"`
	Gender          string `json:"gender"`
	Occupation      string `json:"occupation"`
	Income          string `json:"income"`
	Address         string `json:"address"`
	District        string `json:"district"`
	Subdistrict     string `json:"subdistrict"`
	Zipcode         string `json:"zipcode"`
	CanalZone       string `json:"canal_zone"`
	ResidencyYears  string `json:"residency_years"`
	ResidencyMonths string `json:"residency_months"`
	Phone           string `json:"phone"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	Altitude        string `json:"altitude"`
	ConsentDocURL   string `json:"consent_doc_url"`
}

// InformantPatch is the partial-update form: nil means "field not present",
// so absent fields are left untouched while present ones are re-sanitized.
type InformantPatch struct {
	FullName        *string `json:"full_name"`
	Age             *string `json:"age"`
	Gender          *string `json:"gender"`
	Occupation      *string `json:"occupation"`
	Income          *string `json:"income"`
	Address         *string `json:"address"`
	District        *string `json:"district"`
	Subdistrict     *string `json:"subdistrict"`
	Zipcode         *string `json:"zipcode"`
	CanalZone       *string `json:"canal_zone"`
	ResidencyYears  *string `json:"residency_years"`
	ResidencyMonths *string `json:"residency_months"`
	Phone           *string `json:"phone"`
	Latitude        *string `json:"latitude"`
	Longitude       *string `json:"longitude"`
	Altitude        *string `json:"altitude"`
	ConsentDocURL   *string `json:"consent_doc_url"`
}

func (s *InformantService) Create(input InformantInput, creatorCode string) (*models.Informant, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(input.CodeSv) == "" {
		return nil, fmt.Errorf("%w: code_sv is required", ErrValidation)
	}

	age, err := utils.NullableInt(input.Age)
	if err != nil {
		return nil, fmt.Errorf("%w: age must be a number", ErrValidation)
	}
	income, err := utils.NullableFloat(input.Income)
	if err != nil {
		return nil, fmt.Errorf("%w: income must be a number", ErrValidation)
	}
	lat, err := utils.NullableFloat(input.Latitude)
	if err != nil {
		return nil, fmt.Errorf("%w: latitude must be a number", ErrValidation)
	}
	lng, err := utils.NullableFloat(input.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: longitude must be a number", ErrValidation)
	}

	inf := models.Informant{
		CodeSv:          strings.TrimSpace(input.CodeSv),
		FullName:        strings.TrimSpace(input.FullName),
		Age:             age,
		Gender:          utils.NullableString(input.Gender),
		Occupation:      utils.NullableString(input.Occupation),
		Income:          income,
		Address:         input.Address,
		District:        input.District,
		Subdistrict:     input.Subdistrict,
		Zipcode:         input.Zipcode,
		CanalZone:       utils.NullableString(input.CanalZone),
		ResidencyYears:  utils.IntOrZero(input.ResidencyYears),
		ResidencyMonths: utils.IntOrZero(input.ResidencyMonths),
		Phone:           input.Phone,
		Latitude:        lat,
		Longitude:       lng,
		Altitude:        utils.FloatOrZero(input.Altitude),
		ConsentDocURL:   input.ConsentDocURL,
		RefSvCode:       creatorCode,
	}

	if err := s.db.Create(&inf).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: code_sv %q is already in use", ErrValidation, inf.CodeSv)
		}
		return nil, err
	}
	return &inf, nil
}

func (s *InformantService) Get(id uint) (*models.Informant, error) {
	var inf models.Informant
	if err := s.db.First(&inf, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inf, nil
}

// Update is restricted to admin/director; it stamps the editor identity and
// re-applies numeric sanitization to every numeric field present.
func (s *InformantService) Update(id uint, patch InformantPatch, role, editorCode string) (*models.Informant, error) {
	if !Allowed(role, ActionInformantUpdate, editorCode, "") {
		return nil, ErrForbidden
	}

	inf, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		if strings.TrimSpace(*patch.FullName) == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", ErrValidation)
		}
		inf.FullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.Age != nil {
		v, err := utils.NullableInt(*patch.Age)
		if err != nil {
			return nil, fmt.Errorf("%w: age must be a number", ErrValidation)
		}
		inf.Age = v
	}
	if patch.Gender != nil {
		inf.Gender = utils.NullableString(*patch.Gender)
	}
	if patch.Occupation != nil {
		inf.Occupation = utils.NullableString(*patch.Occupation)
	}
	if patch.Income != nil {
		v, err := utils.NullableFloat(*patch.Income)
		if err != nil {
			return nil, fmt.Errorf("%w: income must be a number", ErrValidation)
		}
		inf.Income = v
	}
	if patch.Address != nil {
		inf.Address = *patch.Address
	}
	if patch.District != nil {
		inf.District = *patch.District
	}
	if patch.Subdistrict != nil {
		inf.Subdistrict = *patch.Subdistrict
	}
	if patch.Zipcode != nil {
		inf.Zipcode = *patch.Zipcode
	}
	if patch.CanalZone != nil {
		inf.CanalZone = utils.NullableString(*patch.CanalZone)
	}
	if patch.ResidencyYears != nil {
		inf.ResidencyYears = utils.IntOrZero(*patch.ResidencyYears)
	}
	if patch.ResidencyMonths != nil {
		inf.ResidencyMonths = utils.IntOrZero(*patch.ResidencyMonths)
	}
	if patch.Phone != nil {
		inf.Phone = *patch.Phone
	}
	if patch.Latitude != nil {
		v, err := utils.NullableFloat(*patch.Latitude)
		if err != nil {
			return nil, fmt.Errorf("%w: latitude must be a number", ErrValidation)
		}
		inf.Latitude = v
	}
	if patch.Longitude != nil {
		v, err := utils.NullableFloat(*patch.Longitude)
		if err != nil {
			return nil, fmt.Errorf("%w: longitude must be a number", ErrValidation)
		}
		inf.Longitude = v
	}
	if patch.Altitude != nil {
		inf.Altitude = utils.FloatOrZero(*patch.Altitude)
	}
	if patch.ConsentDocURL != nil {
		inf.ConsentDocURL = *patch.ConsentDocURL
	}

	now := time.Now()
	inf.EditedBy = &editorCode
	inf.EditedAt = &now

	if err := s.db.Save(inf).Error; err != nil {
		return nil, err
	}
	return inf, nil
}

// Delete refuses to remove an informant still referenced by menus rather
// than cascading.
func (s *InformantService) Delete(id uint, role, callerCode string) error {
	if !Allowed(role, ActionInformantDelete, callerCode, "") {
		return ErrForbidden
	}

	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.Menu{}).Where("ref_informant_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrInformantReferenced
	}

	return s.db.Delete(&models.Informant{}, id).Error
}

// Search matches code, name or phone case-insensitively. Non-privileged
// callers only see informants they created; admin/director see all unless
// the mine flag narrows the view.
func (s *InformantService) Search(query string, page, limit int, role, callerCode string, mine bool) (*Paginated, error) {
	page, limit = normalizePage(page, limit)

	q := s.db.Model(&models.Informant{})
	if role == RoleUser || mine {
		q = q.Where("ref_sv_code = ?", callerCode)
	}
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(code_sv) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var informants []models.Informant
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&informants).Error; err != nil {
		return nil, err
	}

	return &Paginated{
		Data:       informants,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}
