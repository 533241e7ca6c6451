package dto

type RegionCount struct {
	RegionName  string `json:"region_name"`
	MemberCount int    `json:"member_count"`
}

type DashboardSummary struct {
	TotalMembers    int            `json:"total_members"`
	ActiveMembers   int            `json:"active_members"`
	InactiveMembers int            `json:"inactive_members"`
	ByCategory      map[string]int `json:"by_category"`
	ByRegion        []RegionCount  `json:"by_region"`
	TotalRegions    int64          `json:"total_regions"`
	TotalMajalis    int64          `json:"total_majalis"`
	UpcomingEvents  int64          `json:"upcoming_events"`
}
