package dto

import (
	"ansarullah_backend/internals/features/maal/contributions/model"
)

// ContributionResponse is the row plus its derived total.
type ContributionResponse struct {
	model.ContributionModel
	ContributionTotal float64 `json:"contribution_total"`
}

func NewContributionResponse(m model.ContributionModel) ContributionResponse {
	return ContributionResponse{
		ContributionModel: m,
		ContributionTotal: m.Total(),
	}
}

func NewContributionResponses(rows []model.ContributionModel) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewContributionResponse(m))
	}
	return out
}
