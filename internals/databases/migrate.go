package database

import (
	"log"

	departmentModel "ansarullah_backend/internals/features/departments/reports/model"
	eventModel "ansarullah_backend/internals/features/events/model"
	contributionModel "ansarullah_backend/internals/features/maal/contributions/model"
	hierarchyModel "ansarullah_backend/internals/features/tajneed/hierarchy/model"
	memberModel "ansarullah_backend/internals/features/tajneed/members/model"
	tarbiyyatModel "ansarullah_backend/internals/features/tarbiyyat/reports/model"
	authModel "ansarullah_backend/internals/features/users/auth/model"
	subUserModel "ansarullah_backend/internals/features/users/subuser/model"
)

// Migrate brings the schema up to date. gen_random_uuid() needs pgcrypto on
// Postgres < 13, so the extension comes first.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}

	err := DB.AutoMigrate(
		&hierarchyModel.RegionModel{},
		&hierarchyModel.MajlisModel{},
		&memberModel.MemberModel{},
		&contributionModel.ContributionModel{},
		&tarbiyyatModel.TarbiyyatReportModel{},
		&departmentModel.DepartmentReport{},
		&departmentModel.DepartmentReportDetail{},
		&eventModel.EventModel{},
		&eventModel.AttendanceModel{},
		&subUserModel.SubUserModel{},
		&authModel.TokenBlacklist{},
	)
	if err != nil {
		log.Fatalf("[ERROR] Migration failed: %v", err)
	}

	// The report upserts rely on these indexes for ON CONFLICT; coming up
	// without them would break every department-report write, so a failure
	// (most likely Postgres < 15 rejecting NULLS NOT DISTINCT) is fatal.
	for _, stmt := range naturalKeyIndexDDL {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatalf("[ERROR] natural key index migration failed (Postgres 15+ required): %v", err)
		}
	}

	log.Println("✅ Database migration complete")
}

// Natural-key indexes for the department report tables. They must treat
// NULLs as equal so national (region-less) tabligh_digital rows still
// collide per period; plain uniqueIndex tags cannot express that, hence the
// drop and rebuild after AutoMigrate.
var naturalKeyIndexDDL = []string{
	`DROP INDEX IF EXISTS uq_department_reports_natural`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_department_reports_natural
		ON department_reports (department_report_region_id, department_report_majlis_id,
			department_report_month, department_report_year, department_report_section)
		NULLS NOT DISTINCT`,
	`DROP INDEX IF EXISTS uq_department_report_details_natural`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_department_report_details_natural
		ON department_report_details (detail_region_id, detail_majlis_id,
			detail_month, detail_year, detail_section)
		NULLS NOT DISTINCT`,
}
