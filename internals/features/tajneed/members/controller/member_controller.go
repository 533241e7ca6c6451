package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/tajneed/members/dto"
	"ansarullah_backend/internals/features/tajneed/members/model"
	"ansarullah_backend/internals/features/tajneed/members/service"
	helper "ansarullah_backend/internals/helpers"
)

var validate = validator.New()

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

// POST /members: registration; allocates the next member number
func (mc *MemberController) RegisterMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.BirthDate != nil {
		if age := service.Age(*req.BirthDate, time.Now()); age <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Computed age must be positive")
		}
	}

	member := req.ToModel()
	if err := service.CreateWithSerial(mc.DB, &member); err != nil {
		log.Println("[ERROR] Failed to register member:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SUCCESS] Registered member %s (%s)\n", member.MemberNo, member.MemberFullName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Member registered successfully",
		dto.NewMemberResponse(member, time.Now()))
}

// GET /members: filters: region, majlis, category, status, q
func (mc *MemberController) GetMembers(c *fiber.Ctx) error {
	members, err := service.FetchAllMembers(mc.DB)
	if err != nil {
		log.Println("[ERROR] Failed to fetch members:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve members")
	}

	now := time.Now()
	filtered := service.ApplyMemberFilter(members, dto.MemberFilterFromQuery(c), now)

	p := helper.ParseFiber(c, "member_no", "asc", helper.DefaultOpts)
	switch p.SortBy {
	case "created_at":
		// FetchAllMembers already returns created_at asc
		if p.SortOrder == "desc" {
			for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
				filtered[i], filtered[j] = filtered[j], filtered[i]
			}
		}
	default:
		service.SortMembersByNo(filtered, p.SortOrder == "desc")
	}

	total := int64(len(filtered))
	start := p.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + p.Limit()
	if p.All || end > len(filtered) {
		end = len(filtered)
	}

	return helper.Success(c, "Members fetched successfully", fiber.Map{
		"members":    dto.NewMemberResponses(filtered[start:end], now),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /members/next-number: preview, not a reservation
func (mc *MemberController) NextMemberNo(c *fiber.Ctx) error {
	var nos []string
	if err := mc.DB.Model(&model.MemberModel{}).Unscoped().Pluck("member_no", &nos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Next member number", fiber.Map{
		"member_no": service.NextSerial(nos),
	})
}

// GET /members/:id
func (mc *MemberController) GetMember(c *fiber.Ctx) error {
	member, err := mc.findMember(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "Member fetched successfully", dto.NewMemberResponse(*member, time.Now()))
}

// PUT /members/:id
func (mc *MemberController) UpdateMember(c *fiber.Ctx) error {
	member, err := mc.findMember(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(member)
	if member.MemberBirthDate != nil {
		if age := service.Age(*member.MemberBirthDate, time.Now()); age <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Computed age must be positive")
		}
	}

	if err := mc.DB.Save(member).Error; err != nil {
		log.Println("[ERROR] Failed to update member:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Member updated successfully", dto.NewMemberResponse(*member, time.Now()))
}

// DELETE /members/:id: explicit admin delete (soft)
func (mc *MemberController) DeleteMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	res := mc.DB.Delete(&model.MemberModel{}, "member_id = ?", memberID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Member not found")
	}
	return helper.Success(c, "Member deleted successfully", nil)
}

func (mc *MemberController) findMember(c *fiber.Ctx) (*model.MemberModel, error) {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Member not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return &member, nil
}
