package dto

import (
	"github.com/octobees/vendor-matching/internal/service/intent"
	"github.com/octobees/vendor-matching/internal/service/scoring"
)

// MatchMode tells the caller what the matching pipeline needs next.
type MatchMode string

const (
	ModeNeedsCategory MatchMode = "needs_category"
	ModeNeedsRegion   MatchMode = "needs_region"
	ModeResults       MatchMode = "results"
)

// MatchRequest is the payload accepted by POST /vendors/match.
type MatchRequest struct {
	Message        string `json:"message" validate:"max=4000"`
	Category       string `json:"category,omitempty" validate:"omitempty,category"`
	Region         string `json:"region,omitempty" validate:"omitempty,region"`
	ConversationID string `json:"conversation_id,omitempty" validate:"omitempty,max=128"`
}

// MatchQuery is one chat turn handed to the matching service. Provided
// values come from earlier turns and take precedence over detection.
type MatchQuery struct {
	RawMessage       string
	ProvidedCategory *intent.Category
	ProvidedRegion   *intent.Region
}

// MatchResponse is the outcome of one matching turn. Mode is empty when the
// vendor store could not be read.
type MatchResponse struct {
	Mode     MatchMode              `json:"mode,omitempty"`
	Message  string                 `json:"message"`
	Category *intent.Category       `json:"category,omitempty"`
	Region   *intent.Region         `json:"region,omitempty"`
	Budget   *intent.Budget         `json:"budget,omitempty"`
	Vendors  []scoring.ScoredVendor `json:"vendors"`
}
