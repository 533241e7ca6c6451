package service

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	memberService "ansarullah_backend/internals/features/tajneed/members/service"
)

type pdfColumn struct {
	header string
	width  float64
}

var memberPDFColumns = []pdfColumn{
	{"No", 10},
	{"Member No", 22},
	{"Full Name", 55},
	{"Phone", 30},
	{"Region", 35},
	{"Majlis", 35},
	{"Age", 12},
	{"Category", 28},
	{"Status", 20},
}

// BuildMembersPDF renders the member register as a landscape A4 table with
// a branded header and repeating column headers on every page.
func BuildMembersPDF(members []memberModel.MemberModel, asOf time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 8, "Majlis Ansarullah Kenya", "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Member Register as of %s", asOf.Format("02 January 2006")),
			"", 1, "C", false, 0, "")
		pdf.Ln(3)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(217, 225, 242)
		for _, col := range memberPDFColumns {
			pdf.CellFormat(col.width, 7, col.header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	pdf.SetHeaderFunc(writeHeader)
	pdf.AddPage()

	for i, m := range members {
		age := ""
		if m.MemberBirthDate != nil {
			age = fmt.Sprintf("%d", memberService.Age(*m.MemberBirthDate, asOf))
		}
		status := "Active"
		if !m.MemberIsActive {
			status = "Inactive"
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			m.MemberNo,
			m.MemberFullName,
			m.MemberPhone,
			m.MemberRegionName,
			m.MemberMajlisName,
			age,
			memberService.DeriveCategory(m.MemberBirthDate, m.MemberCategory, asOf),
			status,
		}
		for j, col := range memberPDFColumns {
			pdf.CellFormat(col.width, 6, cells[j], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetY(-12)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total members: %d", len(members)), "", 0, "L", false, 0, "")

	return pdf
}
