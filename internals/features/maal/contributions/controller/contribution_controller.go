package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/maal/contributions/dto"
	"ansarullah_backend/internals/features/maal/contributions/model"
	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type ContributionController struct {
	DB *gorm.DB
}

func NewContributionController(db *gorm.DB) *ContributionController {
	return &ContributionController{DB: db}
}

// scopeMembers builds a member-id subquery matching a region/majlis filter
// value by FK id or by the denormalized name legacy rows carry.
func scopeMembers(db *gorm.DB, idCol, nameCol, value string) *gorm.DB {
	return db.Model(&memberModel.MemberModel{}).
		Select("member_id").
		Where(idCol+"::text = ? OR LOWER("+nameCol+") = LOWER(?)", value, value)
}

// GET /contributions?member_id=&month=&year=&region=&majlis=
func (cc *ContributionController) GetContributions(c *fiber.Ctx) error {
	q := cc.DB.Model(&model.ContributionModel{})

	if raw := c.Query("member_id"); raw != "" && raw != "all" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid member_id")
		}
		q = q.Where("contribution_member_id = ?", memberID)
	}
	if raw := c.Query("month"); raw != "" && raw != "all" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid month")
		}
		q = q.Where("contribution_month = ?", month)
	}
	if raw := c.Query("year"); raw != "" && raw != "all" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
		}
		q = q.Where("contribution_year = ?", year)
	}
	// region/majlis filters go through the member row; legacy members may
	// carry the unit by name only, so both representations are matched
	if raw := c.Query("region"); raw != "" && raw != "all" {
		q = q.Where("contribution_member_id IN (?)",
			scopeMembers(cc.DB, "member_region_id", "member_region_name", raw))
	}
	if raw := c.Query("majlis"); raw != "" && raw != "all" {
		q = q.Where("contribution_member_id IN (?)",
			scopeMembers(cc.DB, "member_majlis_id", "member_majlis_name", raw))
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ContributionModel
	if err := q.Order("contribution_year desc, contribution_month desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Failed to fetch contributions:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve contributions")
	}

	return helper.Success(c, "Contributions fetched successfully", fiber.Map{
		"contributions": dto.NewContributionResponses(rows),
		"pagination":    helper.BuildMeta(total, p),
	})
}

// POST /contributions
func (cc *ContributionController) CreateContribution(c *fiber.Ctx) error {
	var row model.ContributionModel
	if err := c.BodyParser(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&row); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := cc.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ?", row.ContributionMemberID).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Member does not exist")
	}

	if err := cc.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Failed to create contribution:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contribution recorded successfully",
		dto.NewContributionResponse(row))
}

// PUT /contributions/:id
func (cc *ContributionController) UpdateContribution(c *fiber.Ctx) error {
	contributionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid contribution ID")
	}

	var row model.ContributionModel
	if err := cc.DB.First(&row, "contribution_id = ?", contributionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Contribution not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var input model.ContributionModel
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.ContributionID = row.ContributionID
	input.ContributionMemberID = row.ContributionMemberID
	input.CreatedAt = row.CreatedAt
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := cc.DB.Save(&input).Error; err != nil {
		log.Println("[ERROR] Failed to update contribution:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Contribution updated successfully", dto.NewContributionResponse(input))
}

// DELETE /contributions/:id
func (cc *ContributionController) DeleteContribution(c *fiber.Ctx) error {
	contributionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid contribution ID")
	}

	res := cc.DB.Delete(&model.ContributionModel{}, "contribution_id = ?", contributionID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Contribution not found")
	}
	return helper.Success(c, "Contribution deleted successfully", nil)
}
