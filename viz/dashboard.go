// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides an ASCII overview of the funnel and follow-up health
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
)

type DashboardStats struct {
	// Funnel overview, in stage order
	Funnel []FunnelStageStats

	// Overall stats
	TotalLeads     int
	TotalValue     float64
	TotalTemplates int

	// Follow-up health
	Late     int
	Today    int
	Upcoming int

	// Needs attention
	StaleLeads []StaleLead
}

type FunnelStageStats struct {
	Stage string
	Count int
	Value float64 // summed letter value in BRL
}

type StaleLead struct {
	Name      string
	DaysSince int
}

// staleAfterDays is how long without contact before a lead needs attention.
const staleAfterDays = 14

func GenerateDashboardStats(st *models.AppState, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalLeads:     len(st.Leads),
		TotalTemplates: len(st.Templates),
	}

	for _, stage := range st.Stages {
		fstats := FunnelStageStats{Stage: stage.Name}
		for _, lead := range crm.LeadsByStage(st, stage.ID) {
			fstats.Count++
			fstats.Value += lead.Value
		}
		stats.Funnel = append(stats.Funnel, fstats)
	}

	for _, lead := range st.Leads {
		stats.TotalValue += lead.Value
	}

	buckets := crm.Triage(st.Leads, now)
	stats.Late = len(buckets.Late)
	stats.Today = len(buckets.Today)
	stats.Upcoming = len(buckets.Upcoming)

	for i := range st.Leads {
		days := crm.DaysSinceContact(&st.Leads[i], now)
		if days > staleAfterDays {
			stats.StaleLeads = append(stats.StaleLeads, StaleLead{
				Name:      st.Leads[i].Name,
				DaysSince: days,
			})
		}
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  PROXVENDA DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	// Funnel overview
	out.WriteString("FUNNEL OVERVIEW\n")
	renderFunnel(&out, stats.Funnel)
	out.WriteString("\n")

	// Stats
	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d leads  💰 R$ %.2f in letters  📝 %d templates\n\n",
		stats.TotalLeads, stats.TotalValue, stats.TotalTemplates))

	// Follow-up health
	out.WriteString("FOLLOW-UPS\n")
	out.WriteString(fmt.Sprintf("  🔴 %d late  🟡 %d today  🟢 %d upcoming\n\n",
		stats.Late, stats.Today, stats.Upcoming))

	// Needs attention
	if len(stats.StaleLeads) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d lead(s) - no contact in %d+ days\n",
			len(stats.StaleLeads), staleAfterDays))
	}

	return out.String()
}

func renderFunnel(out *strings.Builder, funnel []FunnelStageStats) {
	maxCount := 0
	for _, fstats := range funnel {
		if fstats.Count > maxCount {
			maxCount = fstats.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, fstats := range funnel {
		barLen := fstats.Count * 20 / maxCount
		bar := strings.Repeat("█", barLen)
		out.WriteString(fmt.Sprintf("  %-20s %-20s %d", fstats.Stage, bar, fstats.Count))
		if fstats.Value > 0 {
			out.WriteString(fmt.Sprintf("  (R$ %.2f)", fstats.Value))
		}
		out.WriteString("\n")
	}
}
