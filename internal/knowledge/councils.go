package knowledge

import "strings"

// CouncilStats holds development-application performance for a council.
type CouncilStats struct {
	Name                string  `json:"name"`
	AverageApprovalDays int     `json:"average_approval_days"`
	StatutoryTargetDays int     `json:"statutory_target_days"`
	ApprovalRate        float64 `json:"approval_rate"`
}

var councils = map[string]CouncilStats{
	"georges river":         {Name: "Georges River", AverageApprovalDays: 259, StatutoryTargetDays: 40, ApprovalRate: 0.87},
	"blacktown":             {Name: "Blacktown", AverageApprovalDays: 72, StatutoryTargetDays: 40, ApprovalRate: 0.93},
	"parramatta":            {Name: "Parramatta", AverageApprovalDays: 118, StatutoryTargetDays: 40, ApprovalRate: 0.89},
	"liverpool":             {Name: "Liverpool", AverageApprovalDays: 95, StatutoryTargetDays: 40, ApprovalRate: 0.91},
	"sutherland shire":      {Name: "Sutherland Shire", AverageApprovalDays: 134, StatutoryTargetDays: 40, ApprovalRate: 0.85},
	"canterbury-bankstown":  {Name: "Canterbury-Bankstown", AverageApprovalDays: 152, StatutoryTargetDays: 40, ApprovalRate: 0.84},
	"the hills shire":       {Name: "The Hills Shire", AverageApprovalDays: 88, StatutoryTargetDays: 40, ApprovalRate: 0.92},
	"northern beaches":      {Name: "Northern Beaches", AverageApprovalDays: 141, StatutoryTargetDays: 40, ApprovalRate: 0.82},
	"central coast":         {Name: "Central Coast", AverageApprovalDays: 167, StatutoryTargetDays: 40, ApprovalRate: 0.86},
	"wollongong":            {Name: "Wollongong", AverageApprovalDays: 103, StatutoryTargetDays: 40, ApprovalRate: 0.9},
}

// LookupCouncil finds council statistics by name, case-insensitively.
func LookupCouncil(name string) (CouncilStats, bool) {
	stats, ok := councils[strings.ToLower(strings.TrimSpace(name))]
	return stats, ok
}

// Risk tier thresholds on the delay ratio (average days / statutory target).
const (
	riskExtremeRatio = 4.0
	riskHighRatio    = 2.5
	riskMediumRatio  = 1.5
)

// ApprovalRiskLevel tiers a delay ratio into LOW/MEDIUM/HIGH/EXTREME.
func ApprovalRiskLevel(delayRatio float64) string {
	switch {
	case delayRatio > riskExtremeRatio:
		return "EXTREME"
	case delayRatio > riskHighRatio:
		return "HIGH"
	case delayRatio > riskMediumRatio:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
