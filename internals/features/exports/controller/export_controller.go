package controller

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ansarullah_backend/internals/features/exports/service"
	memberDto "ansarullah_backend/internals/features/tajneed/members/dto"
	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	memberService "ansarullah_backend/internals/features/tajneed/members/service"
	helper "ansarullah_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportMembersExcel streams the filtered member register as .xlsx. The
// same filters as the member list apply.
func (ctrl *ExportController) ExportMembersExcel(c *fiber.Ctx) error {
	members, err := ctrl.filteredMembers(c)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch members for export: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export members")
	}

	f, err := service.BuildMembersWorkbook(members, time.Now())
	if err != nil {
		log.Printf("[ERROR] Failed to build workbook: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export members")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Printf("[ERROR] Failed to write workbook: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export members")
	}

	filename := fmt.Sprintf("members_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// ExportMembersPDF streams the filtered member register as PDF.
func (ctrl *ExportController) ExportMembersPDF(c *fiber.Ctx) error {
	members, err := ctrl.filteredMembers(c)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch members for export: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export members")
	}

	pdf := service.BuildMembersPDF(members, time.Now())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[ERROR] Failed to write PDF: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to export members")
	}

	filename := fmt.Sprintf("members_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// filteredMembers applies the member list filters and orders rows by
// registration number (natural order, MA1000 after MA999).
func (ctrl *ExportController) filteredMembers(c *fiber.Ctx) ([]memberModel.MemberModel, error) {
	members, err := memberService.FetchAllMembers(ctrl.DB)
	if err != nil {
		return nil, err
	}

	filtered := memberService.ApplyMemberFilter(members, memberDto.MemberFilterFromQuery(c), time.Now())
	memberService.SortMembersByNo(filtered, false)
	return filtered, nil
}
