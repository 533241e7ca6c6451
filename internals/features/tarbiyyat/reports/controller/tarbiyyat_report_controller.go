package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	"ansarullah_backend/internals/features/tarbiyyat/reports/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type TarbiyyatReportController struct {
	DB *gorm.DB
}

func NewTarbiyyatReportController(db *gorm.DB) *TarbiyyatReportController {
	return &TarbiyyatReportController{DB: db}
}

// GET /tarbiyyat-reports?member_id=&month=&year=
func (tc *TarbiyyatReportController) GetReports(c *fiber.Ctx) error {
	q := tc.DB.Model(&model.TarbiyyatReportModel{})

	if raw := c.Query("member_id"); raw != "" && raw != "all" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid member_id")
		}
		q = q.Where("tarbiyyat_report_member_id = ?", memberID)
	}
	if raw := c.Query("month"); raw != "" && raw != "all" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid month")
		}
		q = q.Where("tarbiyyat_report_month = ?", month)
	}
	if raw := c.Query("year"); raw != "" && raw != "all" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("tarbiyyat_report_year = ?", year)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TarbiyyatReportModel
	if err := q.Order("tarbiyyat_report_year desc, tarbiyyat_report_month desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to fetch tarbiyyat reports:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	return helper.Success(c, "Tarbiyyat reports fetched successfully", fiber.Map{
		"reports":    rows,
		"pagination": helper.BuildMeta(total, p),
	})
}

// POST /tarbiyyat-reports: upsert on (member, month, year)
func (tc *TarbiyyatReportController) UpsertReport(c *fiber.Ctx) error {
	var row model.TarbiyyatReportModel
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&row); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := tc.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", row.TarbiyyatReportMemberID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Member does not exist")
	}

	if err := tc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "tarbiyyat_report_member_id"},
			{Name: "tarbiyyat_report_month"},
			{Name: "tarbiyyat_report_year"},
		},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		log.Println("[ERROR] Failed to upsert tarbiyyat report:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tarbiyyat report saved successfully", row)
}

// DELETE /tarbiyyat-reports/:id
func (tc *TarbiyyatReportController) DeleteReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	res := tc.DB.Delete(&model.TarbiyyatReportModel{}, "tarbiyyat_report_id = ?", reportID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.Success(c, "Tarbiyyat report deleted successfully", nil)
}
