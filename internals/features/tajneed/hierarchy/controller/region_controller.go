package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/hierarchy/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type RegionController struct {
	DB *gorm.DB
}

func NewRegionController(db *gorm.DB) *RegionController {
	return &RegionController{DB: db}
}

// GET /regions
func (rc *RegionController) GetRegions(c *fiber.Ctx) error {
	var regions []model.RegionModel
	if err := rc.DB.Order("region_name asc").Find(&regions).Error; err != nil {
		log.Println("[ERROR] Failed to fetch regions:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve regions")
	}
	return helper.Success(c, "Regions fetched successfully", fiber.Map{
		"total":   len(regions),
		"regions": regions,
	})
}

// POST /regions
func (rc *RegionController) CreateRegion(c *fiber.Ctx) error {
	var region model.RegionModel
	if err := c.BodyParser(&region); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&region); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := rc.DB.Create(&region).Error; err != nil {
		log.Println("[ERROR] Failed to create region:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SUCCESS] Created region %s\n", region.RegionName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Region created successfully", region)
}

// PUT /regions/:id
func (rc *RegionController) UpdateRegion(c *fiber.Ctx) error {
	regionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid region ID")
	}

	var region model.RegionModel
	if err := rc.DB.First(&region, "region_id = ?", regionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Region not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var input struct {
		RegionName string `json:"region_name" validate:"required,min=2,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	region.RegionName = input.RegionName
	if err := rc.DB.Save(&region).Error; err != nil {
		log.Println("[ERROR] Failed to update region:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Region updated successfully", region)
}

// DELETE /regions/:id: refused while the region still has majalis
func (rc *RegionController) DeleteRegion(c *fiber.Ctx) error {
	regionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid region ID")
	}

	var majlisCount int64
	if err := rc.DB.Model(&model.MajlisModel{}).Where("majlis_region_id = ?", regionID).Count(&majlisCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if majlisCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Region still has majalis attached; move or delete them first")
	}

	res := rc.DB.Delete(&model.RegionModel{}, "region_id = ?", regionID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Region not found")
	}
	return helper.Success(c, "Region deleted successfully", nil)
}
