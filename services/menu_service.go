package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// MenuListFilters is the serializable view state behind the menu list: free
// text search, canal zone, category, selection tag, pagination, and the
// mine/full flags.
type MenuListFilters struct {
	Search   string
	Canal    string
	Category string
	Status   string
	Page     int
	Limit    int
	Full     bool
	Mine     bool
}

// MenuListItem is a menu enriched with its informant's name/zone and a
// thumbnail for the list view.
type MenuListItem struct {
	models.Menu
	InformantName string   `json:"informant_name"`
	InformantZone string   `json:"informant_zone"`
	Thumbnail     string   `json:"thumbnail"`
	SelectionTags []string `json:"selection_status"`
}

// Columns a free-form menu patch may touch. Everything else (id, owner,
// selection status, timestamps) goes through dedicated operations.
var menuPatchColumns = map[string]bool{
	"name": true, "local_name": true, "other_name": true, "category": true,
	"popularity": true, "popularity_other": true,
	"rituals": true, "rituals_other": true,
	"seasonality": true, "seasonality_other": true,
	"ingredient_src": true, "ingredient_src_other": true,
	"health_benefits": true, "health_benefits_other": true,
	"frequency": true, "frequency_other": true,
	"complexity": true, "complexity_other": true,
	"taste": true, "taste_other": true,
	"serving_size": true, "serving_size_other": true,
	"occasions": true, "occasions_other": true,
	"cooking_methods": true, "cooking_methods_other": true,
	"preservation": true, "preservation_other": true,
	"story": true, "heritage_status": true, "secret_tips": true, "awards": true,
	"ref_informant_id": true,
}

// Multi-select answer columns stored as JSON arrays; patch values for these
// must be re-serialized before they hit the driver.
var menuJSONColumns = map[string]bool{
	"popularity": true, "rituals": true, "seasonality": true,
	"ingredient_src": true, "health_benefits": true, "frequency": true,
	"complexity": true, "taste": true, "serving_size": true,
	"occasions": true, "cooking_methods": true, "preservation": true,
}

func validCategory(c string) bool {
	return c == "" || c == models.CategorySavory || c == models.CategorySweet || c == models.CategorySnack
}

// Create requires a name and an existing informant, and stamps the
// submitting enumerator as owner.
func (s *MenuService) Create(menu *models.Menu, svCode string) (*models.Menu, error) {
	if strings.TrimSpace(menu.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if menu.RefInformantID == 0 {
		return nil, fmt.Errorf("%w: ref_informant_id is required", ErrValidation)
	}
	if !validCategory(menu.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, menu.Category)
	}

	var count int64
	if err := s.db.Model(&models.Informant{}).Where("id = ?", menu.RefInformantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: informant %d does not exist", ErrValidation, menu.RefInformantID)
	}

	menu.RefSvCode = svCode
	menu.SelectionStatus = ""
	if err := s.db.Create(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Get(id uint, full bool) (*models.Menu, error) {
	q := s.db
	if full {
		q = q.Preload("Ingredients").
			Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
			Preload("Photos")
	}
	var menu models.Menu
	if err := q.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// Update applies a free-form partial patch to the scalar survey fields,
// gated on ownership or a reviewing role.
func (s *MenuService) Update(id uint, patch map[string]interface{}, role, callerCode string) (*models.Menu, error) {
	menu, err := s.Get(id, false)
	if err != nil {
		return nil, err
	}
	if !Allowed(role, ActionMenuUpdate, callerCode, menu.RefSvCode) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	for k, v := range patch {
		if !menuPatchColumns[k] {
			continue
		}
		if menuJSONColumns[k] && v != nil {
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("%w: field %s is not valid JSON", ErrValidation, k)
			}
			updates[k] = datatypes.JSON(raw)
			continue
		}
		updates[k] = v
	}
	if name, ok := updates["name"].(string); ok && strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if cat, ok := updates["category"].(string); ok && !validCategory(cat) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, cat)
	}
	if raw, ok := updates["ref_informant_id"]; ok {
		infID, ok := toUint(raw)
		if !ok || infID == 0 {
			return nil, fmt.Errorf("%w: ref_informant_id must be a positive id", ErrValidation)
		}
		var count int64
		if err := s.db.Model(&models.Informant{}).Where("id = ?", infID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: informant %d does not exist", ErrValidation, infID)
		}
	}
	if len(updates) == 0 {
		return menu, nil
	}

	if err := s.db.Model(menu).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id, false)
}

// toUint normalizes the numeric shapes a JSON patch can carry an id in.
func toUint(v interface{}) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case uint:
		return n, true
	}
	return 0, false
}

// UpdateSelectionStatus replaces the whole curation tag set; reviewers send
// the computed set, never incremental adds or removes.
func (s *MenuService) UpdateSelectionStatus(id uint, tags []string, role, callerCode string) error {
	if !Allowed(role, ActionMenuStatus, callerCode, "") {
		return ErrForbidden
	}
	for _, t := range tags {
		known := false
		for _, k := range models.SelectionTags {
			if t == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: unknown selection tag %q", ErrValidation, t)
		}
	}

	menu, err := s.Get(id, false)
	if err != nil {
		return err
	}
	return s.db.Model(menu).Update("selection_status", models.JoinSelectionTags(tags)).Error
}

// Delete removes a menu and its children. Admin may delete any menu; anyone
// else only their own submissions.
func (s *MenuService) Delete(id uint, role, callerCode string) error {
	menu, err := s.Get(id, false)
	if err != nil {
		return err
	}
	if !Allowed(role, ActionMenuDelete, callerCode, menu.RefSvCode) {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// explicit child cleanup; soft-deleted parents do not trigger the
		// database-level cascade
		if err := tx.Where("ref_menu_id = ?", id).Delete(&models.MenuIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ref_menu_id = ?", id).Delete(&models.MenuStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ref_menu_id = ?", id).Delete(&models.MenuPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, id).Error
	})
}

// List is open to every role by default so the whole project can track
// collection progress; the mine flag narrows to the caller's submissions.
func (s *MenuService) List(f MenuListFilters, callerCode string) (*Paginated, error) {
	page, limit := normalizePage(f.Page, f.Limit)

	q := s.db.Model(&models.Menu{}).
		Joins("JOIN informants ON informants.id = menus.ref_informant_id AND informants.deleted_at IS NULL")

	if f.Mine {
		q = q.Where("menus.ref_sv_code = ?", callerCode)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(menus.name) LIKE ? OR LOWER(menus.local_name) LIKE ? OR LOWER(informants.full_name) LIKE ?",
			like, like, like)
	}
	if f.Canal != "" {
		q = q.Where("informants.canal_zone = ?", f.Canal)
	}
	if f.Category != "" {
		q = q.Where("menus.category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("menus.selection_status LIKE ?", "%"+f.Status+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var menus []models.Menu
	listQ := q.Order("menus.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit)
	if f.Full {
		listQ = listQ.Preload("Ingredients").
			Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
			Preload("Photos")
	}
	if err := listQ.Find(&menus).Error; err != nil {
		return nil, err
	}

	items, err := s.enrich(menus)
	if err != nil {
		return nil, err
	}

	return &Paginated{
		Data:       items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

// enrich attaches informant name/zone and the first photo to each menu with
// two batched queries instead of one per row.
func (s *MenuService) enrich(menus []models.Menu) ([]MenuListItem, error) {
	items := make([]MenuListItem, 0, len(menus))
	if len(menus) == 0 {
		return items, nil
	}

	infIDs := make([]uint, 0, len(menus))
	menuIDs := make([]uint, 0, len(menus))
	for _, m := range menus {
		infIDs = append(infIDs, m.RefInformantID)
		menuIDs = append(menuIDs, m.ID)
	}

	var informants []models.Informant
	if err := s.db.Where("id IN ?", infIDs).Find(&informants).Error; err != nil {
		return nil, err
	}
	infByID := make(map[uint]models.Informant, len(informants))
	for _, inf := range informants {
		infByID[inf.ID] = inf
	}

	var photos []models.MenuPhoto
	if err := s.db.Where("ref_menu_id IN ?", menuIDs).Order("id ASC").Find(&photos).Error; err != nil {
		return nil, err
	}
	firstPhoto := make(map[uint]string, len(menus))
	for _, p := range photos {
		if _, ok := firstPhoto[p.RefMenuID]; !ok {
			firstPhoto[p.RefMenuID] = p.URL
		}
	}

	for _, m := range menus {
		item := MenuListItem{
			Menu:          m,
			Thumbnail:     firstPhoto[m.ID],
			SelectionTags: m.SelectionTagList(),
		}
		if inf, ok := infByID[m.RefInformantID]; ok {
			item.InformantName = inf.FullName
			if inf.CanalZone != nil {
				item.InformantZone = *inf.CanalZone
			}
		}
		items = append(items, item)
	}
	return items, nil
}
