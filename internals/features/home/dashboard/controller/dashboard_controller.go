package controller

import (
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "ansarullah_backend/internals/features/events/model"
	"ansarullah_backend/internals/features/home/dashboard/dto"
	hierarchyModel "ansarullah_backend/internals/features/tajneed/hierarchy/model"
	memberService "ansarullah_backend/internals/features/tajneed/members/service"
	helper "ansarullah_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetSummary aggregates the landing-page counters. Category buckets are
// derived from birth dates at request time, the same way the member list
// derives them, so the tiers shown here always reflect current ages.
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	now := time.Now()

	members, err := memberService.FetchAllMembers(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch members for dashboard: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	summary := dto.DashboardSummary{
		TotalMembers: len(members),
		ByCategory: map[string]int{
			memberService.CategorySafAwwal: 0,
			memberService.CategorySafDom:   0,
			memberService.CategoryGeneral:  0,
		},
	}

	regionCounts := map[string]int{}
	for _, m := range members {
		if m.MemberIsActive {
			summary.ActiveMembers++
		} else {
			summary.InactiveMembers++
		}
		cat := memberService.DeriveCategory(m.MemberBirthDate, m.MemberCategory, now)
		if cat != "" {
			summary.ByCategory[cat]++
		}
		if m.MemberRegionName != "" {
			regionCounts[m.MemberRegionName]++
		}
	}

	summary.ByRegion = make([]dto.RegionCount, 0, len(regionCounts))
	for name, count := range regionCounts {
		summary.ByRegion = append(summary.ByRegion, dto.RegionCount{RegionName: name, MemberCount: count})
	}
	sort.Slice(summary.ByRegion, func(i, j int) bool {
		return summary.ByRegion[i].RegionName < summary.ByRegion[j].RegionName
	})

	if err := ctrl.DB.Model(&hierarchyModel.RegionModel{}).Count(&summary.TotalRegions).Error; err != nil {
		log.Printf("[ERROR] Failed to count regions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	if err := ctrl.DB.Model(&hierarchyModel.MajlisModel{}).Count(&summary.TotalMajalis).Error; err != nil {
		log.Printf("[ERROR] Failed to count majalis: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	if err := ctrl.DB.Model(&eventModel.EventModel{}).
		Where("event_is_active = ? AND event_start_date >= ?", true, now.Format("2006-01-02")).
		Count(&summary.UpcomingEvents).Error; err != nil {
		log.Printf("[ERROR] Failed to count events: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return helper.Success(c, "Dashboard summary fetched successfully", summary)
}
