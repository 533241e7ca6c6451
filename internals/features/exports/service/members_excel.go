package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	memberService "ansarullah_backend/internals/features/tajneed/members/service"
)

const membersSheet = "Members"

var memberExcelHeaders = []string{
	"No", "Member No", "Full Name", "Alternate Name", "Phone",
	"Region", "Majlis", "Age", "Category", "Baiat Type",
	"Can Read Quran", "Musi", "Status",
}

// BuildMembersWorkbook renders the member register as an Excel workbook:
// title row, frozen header row, one row per member with the category
// derived at export time.
func BuildMembersWorkbook(members []memberModel.MemberModel, asOf time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), membersSheet)

	title := fmt.Sprintf("Majlis Ansarullah Kenya - Member Register (%s)", asOf.Format("02 Jan 2006"))
	if err := f.SetCellValue(membersSheet, "A1", title); err != nil {
		return nil, err
	}
	endCol, _ := excelize.ColumnNumberToName(len(memberExcelHeaders))
	if err := f.MergeCell(membersSheet, "A1", endCol+"1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(membersSheet, "A1", endCol+"1", titleStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return nil, err
	}
	for i, h := range memberExcelHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "2"
		if err := f.SetCellValue(membersSheet, cell, h); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(membersSheet, cell, cell, headerStyle)
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(membersSheet, &excelize.Panes{
		Freeze: true, YSplit: 2, TopLeftCell: "A3", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, err
	}

	for i, m := range members {
		row := i + 3
		values := memberExportRow(m, asOf)
		cells := []interface{}{i + 1}
		cells = append(cells, values...)
		for j, v := range cells {
			col, _ := excelize.ColumnNumberToName(j + 1)
			if err := f.SetCellValue(membersSheet, fmt.Sprintf("%s%d", col, row), v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(membersSheet, "B", "C", 18)
	_ = f.SetColWidth(membersSheet, "F", "G", 16)
	return f, nil
}

func memberExportRow(m memberModel.MemberModel, asOf time.Time) []interface{} {
	alt := ""
	if m.MemberAlternateName != nil {
		alt = *m.MemberAlternateName
	}
	age := ""
	if m.MemberBirthDate != nil {
		age = fmt.Sprintf("%d", memberService.Age(*m.MemberBirthDate, asOf))
	}
	status := "Active"
	if !m.MemberIsActive {
		status = "Inactive"
	}
	return []interface{}{
		m.MemberNo,
		m.MemberFullName,
		alt,
		m.MemberPhone,
		m.MemberRegionName,
		m.MemberMajlisName,
		age,
		memberService.DeriveCategory(m.MemberBirthDate, m.MemberCategory, asOf),
		m.MemberBaiatType,
		yesNo(m.MemberCanReadQuran),
		yesNo(m.MemberIsMusi),
		status,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
