package tools

import (
	"fmt"

	"github.com/juggajay/siteproof-v2-sub000/internal/knowledge"
)

// getCouncilApprovalTimeline looks up council approval statistics and tiers
// the delay ratio (average days over statutory target) into a risk level.
func getCouncilApprovalTimeline(args map[string]interface{}) (map[string]interface{}, error) {
	name, ok := stringArg(args, "council")
	if !ok || name == "" {
		return nil, fmt.Errorf("council must be a non-empty string")
	}

	stats, ok := knowledge.LookupCouncil(name)
	if !ok {
		return nil, fmt.Errorf("no approval statistics for council %q", name)
	}

	ratio := float64(stats.AverageApprovalDays) / float64(stats.StatutoryTargetDays)
	risk := knowledge.ApprovalRiskLevel(ratio)

	return map[string]interface{}{
		"council":               stats.Name,
		"average_approval_days": stats.AverageApprovalDays,
		"statutory_target_days": stats.StatutoryTargetDays,
		"approval_rate":         stats.ApprovalRate,
		"delay_ratio":           round3(ratio),
		"risk_level":            risk,
	}, nil
}
