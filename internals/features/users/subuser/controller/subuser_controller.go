package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ansarullah_backend/internals/constants"
	"ansarullah_backend/internals/features/users/subuser/dto"
	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type SubUserController struct {
	DB *gorm.DB
}

func NewSubUserController(db *gorm.DB) *SubUserController {
	return &SubUserController{DB: db}
}

// GetSubUsers lists all accounts. Admin only, wired at the route layer.
func (ctrl *SubUserController) GetSubUsers(c *fiber.Ctx) error {
	var users []subUserModel.SubUserModel
	if err := ctrl.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch sub-users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sub-users")
	}
	return helper.Success(c, "Sub-users fetched successfully", users)
}

func (ctrl *SubUserController) CreateSubUser(c *fiber.Ctx) error {
	var req dto.CreateSubUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidRole(req.SubUserRole) {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf(constants.ErrUnknownRole, req.SubUserRole))
	}

	user, err := req.ToModel()
	if err != nil {
		log.Printf("[ERROR] Password hash failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create sub-user")
	}

	if err := ctrl.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Username is already taken")
		}
		log.Printf("[ERROR] Failed to create sub-user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create sub-user")
	}

	log.Printf("[SUCCESS] Sub-user created: %s (role: %s)", user.SubUserUsername, user.SubUserRole)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sub-user created successfully", user)
}

func (ctrl *SubUserController) UpdateSubUser(c *fiber.Ctx) error {
	user, err := ctrl.findSubUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSubUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.SubUserRole != nil && !constants.IsValidRole(*req.SubUserRole) {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf(constants.ErrUnknownRole, *req.SubUserRole))
	}

	if err := req.Apply(user); err != nil {
		log.Printf("[ERROR] Password hash failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update sub-user")
	}

	if err := ctrl.DB.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Username is already taken")
		}
		log.Printf("[ERROR] Failed to update sub-user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update sub-user")
	}
	return helper.Success(c, "Sub-user updated successfully", user)
}

func (ctrl *SubUserController) DeleteSubUser(c *fiber.Ctx) error {
	user, err := ctrl.findSubUser(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(user).Error; err != nil {
		log.Printf("[ERROR] Failed to delete sub-user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete sub-user")
	}
	return helper.Success(c, "Sub-user deleted successfully", nil)
}

func (ctrl *SubUserController) findSubUser(c *fiber.Ctx) (*subUserModel.SubUserModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid sub-user ID")
	}
	var user subUserModel.SubUserModel
	if err := ctrl.DB.First(&user, "sub_user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Sub-user not found")
		}
		log.Printf("[ERROR] Failed to fetch sub-user: %v", err)
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sub-user")
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
