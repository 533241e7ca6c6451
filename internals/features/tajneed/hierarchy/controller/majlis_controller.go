package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/hierarchy/model"
	helper "ansarullah_backend/internals/helpers"
)

type MajlisController struct {
	DB *gorm.DB
}

func NewMajlisController(db *gorm.DB) *MajlisController {
	return &MajlisController{DB: db}
}

// GET /majalis?region_id=...
func (mc *MajlisController) GetMajalis(c *fiber.Ctx) error {
	q := mc.DB.Preload("Region").Order("majlis_name asc")

	if regionRaw := c.Query("region_id"); regionRaw != "" && regionRaw != "all" {
		regionID, err := uuid.Parse(regionRaw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid region_id")
		}
		var count int64
		if err := mc.DB.Model(&model.RegionModel{}).Where("region_id = ?", regionID).Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Region not found")
		}
		q = q.Where("majlis_region_id = ?", regionID)
	}

	var majalis []model.MajlisModel
	if err := q.Find(&majalis).Error; err != nil {
		log.Println("[ERROR] Failed to fetch majalis:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve majalis")
	}
	return helper.Success(c, "Majalis fetched successfully", fiber.Map{
		"total":   len(majalis),
		"majalis": majalis,
	})
}

// POST /majalis: parent region must exist first
func (mc *MajlisController) CreateMajlis(c *fiber.Ctx) error {
	var majlis model.MajlisModel
	if err := c.BodyParser(&majlis); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&majlis); err != nil {
		return helper.ValidationError(c, err)
	}

	var region model.RegionModel
	if err := mc.DB.First(&region, "region_id = ?", majlis.MajlisRegionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Parent region does not exist")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := mc.DB.Create(&majlis).Error; err != nil {
		log.Println("[ERROR] Failed to create majlis:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	majlis.Region = &region

	log.Printf("[SUCCESS] Created majlis %s under %s\n", majlis.MajlisName, region.RegionName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Majlis created successfully", majlis)
}

// PUT /majalis/:id
func (mc *MajlisController) UpdateMajlis(c *fiber.Ctx) error {
	majlisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid majlis ID")
	}

	var majlis model.MajlisModel
	if err := mc.DB.First(&majlis, "majlis_id = ?", majlisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Majlis not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var input struct {
		MajlisName     string     `json:"majlis_name" validate:"required,min=2,max=100"`
		MajlisRegionID *uuid.UUID `json:"majlis_region_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	majlis.MajlisName = input.MajlisName
	if input.MajlisRegionID != nil {
		var count int64
		if err := mc.DB.Model(&model.RegionModel{}).Where("region_id = ?", *input.MajlisRegionID).Count(&count).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if count == 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Parent region does not exist")
		}
		majlis.MajlisRegionID = *input.MajlisRegionID
	}

	if err := mc.DB.Save(&majlis).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Majlis updated successfully", majlis)
}

// DELETE /majalis/:id
func (mc *MajlisController) DeleteMajlis(c *fiber.Ctx) error {
	majlisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid majlis ID")
	}

	res := mc.DB.Delete(&model.MajlisModel{}, "majlis_id = ?", majlisID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Majlis not found")
	}
	return helper.Success(c, "Majlis deleted successfully", nil)
}
