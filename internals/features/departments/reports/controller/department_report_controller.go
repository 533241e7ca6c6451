package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/constants"
	"ansarullah_backend/internals/features/departments/reports/dto"
	"ansarullah_backend/internals/features/departments/reports/model"
	"ansarullah_backend/internals/features/departments/reports/service"
	hierarchyModel "ansarullah_backend/internals/features/tajneed/hierarchy/model"
	helper "ansarullah_backend/internals/helpers"
	authmw "ansarullah_backend/internals/middlewares/auth"
)

var validate = validator.New()

type DepartmentReportController struct {
	DB   *gorm.DB
	Sync *service.Synchronizer
}

func NewDepartmentReportController(db *gorm.DB) *DepartmentReportController {
	return &DepartmentReportController{
		DB:   db,
		Sync: service.NewSynchronizer(service.NewGormStore(db)),
	}
}

// PUT /department-reports/:section: upsert on the natural key
func (dc *DepartmentReportController) UpsertReport(c *fiber.Ctx) error {
	section := c.Params("section")
	if !constants.IsValidSection(section) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown report section")
	}

	var req dto.UpsertReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if constants.SectionHasUnitScope(section) {
		if req.RegionID == nil || req.MajlisID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "region_id and majlis_id are required for this section")
		}
		var count int64
		if err := dc.DB.Model(&hierarchyModel.MajlisModel{}).
			Where("majlis_id = ? AND majlis_region_id = ?", *req.MajlisID, *req.RegionID).
			Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Majlis not found under the given region")
		}
	} else {
		// tabligh_digital is national: keyed by month/year only
		req.RegionID = nil
		req.MajlisID = nil
	}

	key := req.Key(section)
	if err := dc.Sync.Write(key, req.Details); err != nil {
		log.Println("[ERROR] Failed to save department report:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	details, _, err := dc.Sync.Read(key)
	if err != nil {
		details = service.BlobFields(req.Details)
	}
	return helper.Success(c, "Department report saved successfully", dto.NewReportResponse(key, details))
}

// GET /department-reports/:section?region_id=&majlis_id=&month=&year=
func (dc *DepartmentReportController) GetReport(c *fiber.Ctx) error {
	section := c.Params("section")
	if !constants.IsValidSection(section) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown report section")
	}

	key, err := dc.keyFromQuery(c, section)
	if err != nil {
		return err
	}

	details, ok, readErr := dc.Sync.Read(*key)
	if readErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, readErr.Error())
	}
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.Success(c, "Department report fetched successfully", dto.NewReportResponse(*key, details))
}

// GET /department-reports?section=&region_id=&majlis_id=&month=&year=
// A department sub-user is always narrowed to its own section.
func (dc *DepartmentReportController) ListReports(c *fiber.Ctx) error {
	section := c.Query("section")
	if role := authmw.GetRole(c); role != constants.RoleAdmin {
		section = constants.SectionForRole(role)
		if section == "" {
			return helper.Error(c, fiber.StatusForbidden, "Forbidden - insufficient role")
		}
	}

	q := dc.DB.Model(&model.DepartmentReport{})
	if section != "" && section != "all" {
		if !constants.IsValidSection(section) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown report section")
		}
		q = q.Where("department_report_section = ?", section)
	}
	if raw := c.Query("region_id"); raw != "" && raw != "all" {
		regionID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid region_id")
		}
		q = q.Where("department_report_region_id = ?", regionID)
	}
	if raw := c.Query("majlis_id"); raw != "" && raw != "all" {
		majlisID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid majlis_id")
		}
		q = q.Where("department_report_majlis_id = ?", majlisID)
	}
	if raw := c.Query("month"); raw != "" && raw != "all" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid month")
		}
		q = q.Where("department_report_month = ?", month)
	}
	if raw := c.Query("year"); raw != "" && raw != "all" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("department_report_year = ?", year)
	}

	var rows []model.DepartmentReport
	if err := q.Order("department_report_year desc, department_report_month desc").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to list department reports:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	reports := make([]dto.ReportResponse, 0, len(rows))
	for _, row := range rows {
		key := service.ReportKey{
			RegionID: row.DepartmentReportRegionID,
			MajlisID: row.DepartmentReportMajlisID,
			Month:    row.DepartmentReportMonth,
			Year:     row.DepartmentReportYear,
			Section:  row.DepartmentReportSection,
		}
		details, _, err := dc.Sync.Read(key)
		if err != nil {
			log.Printf("[ERROR] report read for %s %d/%d failed: %v", key.Section, key.Month, key.Year, err)
			details = map[string]interface{}{}
		}
		reports = append(reports, dto.NewReportResponse(key, details))
	}

	return helper.Success(c, "Department reports fetched successfully", fiber.Map{
		"total":   len(reports),
		"reports": reports,
	})
}

// DELETE /department-reports/:section?region_id=&majlis_id=&month=&year=
// Removes both representations.
func (dc *DepartmentReportController) DeleteReport(c *fiber.Ctx) error {
	section := c.Params("section")
	if !constants.IsValidSection(section) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown report section")
	}

	key, err := dc.keyFromQuery(c, section)
	if err != nil {
		return err
	}

	res := dc.whereKey(dc.DB.Model(&model.DepartmentReport{}), *key,
		"department_report_region_id", "department_report_majlis_id",
		"department_report_month", "department_report_year", "department_report_section").
		Delete(&model.DepartmentReport{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Report not found")
	}

	if err := dc.whereKey(dc.DB.Model(&model.DepartmentReportDetail{}), *key,
		"detail_region_id", "detail_majlis_id", "detail_month", "detail_year", "detail_section").
		Delete(&model.DepartmentReportDetail{}).Error; err != nil {
		log.Printf("[ERROR] report details delete failed (ignored): %v", err)
	}
	return helper.Success(c, "Department report deleted successfully", nil)
}

func (dc *DepartmentReportController) keyFromQuery(c *fiber.Ctx, section string) (*service.ReportKey, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid month")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid year")
	}

	key := service.ReportKey{Month: month, Year: year, Section: section}
	if constants.SectionHasUnitScope(section) {
		regionID, err := uuid.Parse(c.Query("region_id"))
		if err != nil {
			return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid region_id")
		}
		majlisID, err := uuid.Parse(c.Query("majlis_id"))
		if err != nil {
			return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid majlis_id")
		}
		key.RegionID = &regionID
		key.MajlisID = &majlisID
	}
	return &key, nil
}

func (dc *DepartmentReportController) whereKey(q *gorm.DB, key service.ReportKey, regionCol, majlisCol, monthCol, yearCol, sectionCol string) *gorm.DB {
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
