package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ansarullah_backend/internals/features/departments/reports/model"
)

// gormStore is the Postgres-backed Store.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

var reportConflictColumns = []clause.Column{
	{Name: "department_report_region_id"},
	{Name: "department_report_majlis_id"},
	{Name: "department_report_month"},
	{Name: "department_report_year"},
	{Name: "department_report_section"},
}

var detailConflictColumns = []clause.Column{
	{Name: "detail_region_id"},
	{Name: "detail_majlis_id"},
	{Name: "detail_month"},
	{Name: "detail_year"},
	{Name: "detail_section"},
}

func (s *gormStore) baseRow(key ReportKey) map[string]interface{} {
	return map[string]interface{}{
		"department_report_region_id": key.RegionID,
		"department_report_majlis_id": key.MajlisID,
		"department_report_month":     key.Month,
		"department_report_year":      key.Year,
		"department_report_section":   key.Section,
		"created_at":                  time.Now(),
		"updated_at":                  time.Now(),
	}
}

func (s *gormStore) UpsertNormalized(key ReportKey, cols map[string]interface{}) error {
	row := s.baseRow(key)
	updates := map[string]interface{}{"updated_at": time.Now()}
	for name, v := range cols {
		row[name] = v
		updates[name] = v
	}
	return s.db.Table(model.DepartmentReport{}.TableName()).
		Clauses(clause.OnConflict{
			Columns:   reportConflictColumns,
			DoUpdates: clause.Assignments(updates),
		}).
		Create(&row).Error
}

func (s *gormStore) UpsertNormalizedBase(key ReportKey) error {
	row := s.baseRow(key)
	return s.db.Table(model.DepartmentReport{}.TableName()).
		Clauses(clause.OnConflict{
			Columns:   reportConflictColumns,
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": time.Now()}),
		}).
		Create(&row).Error
}

func (s *gormStore) UpsertDetails(key ReportKey, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	row := model.DepartmentReportDetail{
		DetailRegionID: key.RegionID,
		DetailMajlisID: key.MajlisID,
		DetailMonth:    key.Month,
		DetailYear:     key.Year,
		DetailSection:  key.Section,
		DetailData:     datatypes.JSON(raw),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: detailConflictColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"detail_data": datatypes.JSON(raw),
			"updated_at":  time.Now(),
		}),
	}).Create(&row).Error
}

// FetchNormalized reads the row as a generic map (SELECT *) so a partially
// migrated schema cannot fail the read, then keeps the known typed columns
// that are non-null.
func (s *gormStore) FetchNormalized(key ReportKey) (map[string]interface{}, bool, error) {
	row := map[string]interface{}{}
	q := keyWhere(s.db.Table(model.DepartmentReport{}.TableName()), key,
		"department_report_region_id", "department_report_majlis_id",
		"department_report_month", "department_report_year", "department_report_section")
	if err := q.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	cols := make(map[string]interface{})
	for _, name := range normalizedIntFields {
		if v, ok := row[name]; ok && v != nil {
			if n, ok := toInt(v); ok {
				cols[name] = n
			}
		}
	}
	for _, name := range normalizedBoolFields {
		if v, ok := row[name]; ok && v != nil {
			if b, ok := v.(bool); ok {
				cols[name] = b
			}
		}
	}
	for _, name := range normalizedTextFields {
		if v, ok := row[name]; ok && v != nil {
			if t, ok := v.(string); ok && t != "" {
				cols[name] = t
			}
		}
	}
	return cols, true, nil
}

func (s *gormStore) FetchDetails(key ReportKey) (map[string]interface{}, bool, error) {
	var row model.DepartmentReportDetail
	q := keyWhere(s.db.Model(&model.DepartmentReportDetail{}), key,
		"detail_region_id", "detail_majlis_id", "detail_month", "detail_year", "detail_section")
	if err := q.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	data := map[string]interface{}{}
	if len(row.DetailData) > 0 {
		if err := json.Unmarshal(row.DetailData, &data); err != nil {
			return nil, false, err
		}
	}
	return data, true, nil
}

func keyWhere(q *gorm.DB, key ReportKey, regionCol, majlisCol, monthCol, yearCol, sectionCol string) *gorm.DB {
	if key.RegionID != nil {
		q = q.Where(regionCol+" = ?", *key.RegionID)
	} else {
		q = q.Where(regionCol + " IS NULL")
	}
	if key.MajlisID != nil {
		q = q.Where(majlisCol+" = ?", *key.MajlisID)
	} else {
		q = q.Where(majlisCol + " IS NULL")
	}
	return q.Where(monthCol+" = ?", key.Month).
		Where(yearCol+" = ?", key.Year).
		Where(sectionCol+" = ?", key.Section)
}
