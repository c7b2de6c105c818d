package services

import (
	"backend/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type countRow struct {
	Key   string
	Count int64
}

// StatsSummary backs the project-wide progress view: how many informants and
// menus have been collected, and how menus break down by canal zone,
// category and curation stage.
type StatsSummary struct {
	Informants  int64            `json:"informants"`
	Menus       int64            `json:"menus"`
	ByCanalZone map[string]int64 `json:"by_canal_zone"`
	ByCategory  map[string]int64 `json:"by_category"`
	ByStatusTag map[string]int64 `json:"by_status_tag"`
}

func (s *StatsService) Summary() (*StatsSummary, error) {
	out := &StatsSummary{
		ByCanalZone: map[string]int64{},
		ByCategory:  map[string]int64{},
		ByStatusTag: map[string]int64{},
	}

	if err := s.db.Model(&models.Informant{}).Count(&out.Informants).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Menu{}).Count(&out.Menus).Error; err != nil {
		return nil, err
	}

	var zones []countRow
	err := s.db.Model(&models.Menu{}).
		Select("COALESCE(informants.canal_zone, '') AS key, COUNT(*) AS count").
		Joins("JOIN informants ON informants.id = menus.ref_informant_id AND informants.deleted_at IS NULL").
		Group("informants.canal_zone").
		Scan(&zones).Error
	if err != nil {
		return nil, err
	}
	for _, z := range zones {
		if z.Key != "" {
			out.ByCanalZone[z.Key] = z.Count
		}
	}

	var cats []countRow
	err = s.db.Model(&models.Menu{}).
		Select("category AS key, COUNT(*) AS count").
		Where("category <> ''").
		Group("category").
		Scan(&cats).Error
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		out.ByCategory[c.Key] = c.Count
	}

	// tags are stored comma-joined, so count per tag with LIKE rather than a
	// group-by
	for _, tag := range models.SelectionTags {
		var n int64
		if err := s.db.Model(&models.Menu{}).
			Where("selection_status LIKE ?", "%"+tag+"%").
			Count(&n).Error; err != nil {
			return nil, err
		}
		out.ByStatusTag[tag] = n
	}

	return out, nil
}
