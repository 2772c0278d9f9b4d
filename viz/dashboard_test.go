// ABOUTME: Tests for dashboard statistics
// ABOUTME: Verifies funnel aggregation, triage counts, and stale detection
package viz

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDashboardStats(t *testing.T) {
	st := models.NewDefaultState()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

	require.NoError(t, crm.AddLead(st, &models.Lead{
		Name: "João", WhatsApp: "11999999999", Type: models.TypeCar, Value: 80000,
	}, now))
	require.NoError(t, crm.AddLead(st, &models.Lead{
		Name: "Maria", WhatsApp: "11988888888", Type: models.TypeHouse, Value: 200000,
		InterestDate: now.AddDate(0, 0, 3),
	}, now.AddDate(0, 0, -20)))

	stats := GenerateDashboardStats(st, now)

	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 280000.0, stats.TotalValue)
	assert.Equal(t, 3, stats.TotalTemplates)

	require.Len(t, stats.Funnel, 5)
	assert.Equal(t, "Lead Novo", stats.Funnel[0].Stage)
	assert.Equal(t, 2, stats.Funnel[0].Count)
	assert.Equal(t, 280000.0, stats.Funnel[0].Value)

	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 1, stats.Upcoming)
	assert.Zero(t, stats.Late)

	// Maria's last contact was 20 days ago
	require.Len(t, stats.StaleLeads, 1)
	assert.Equal(t, "Maria", stats.StaleLeads[0].Name)
	assert.Equal(t, 20, stats.StaleLeads[0].DaysSince)
}

func TestRenderDashboard(t *testing.T) {
	st := models.NewDefaultState()
	now := time.Now()
	require.NoError(t, crm.AddLead(st, &models.Lead{
		Name: "João", WhatsApp: "11999999999", Value: 80000,
	}, now))

	out := RenderDashboard(GenerateDashboardStats(st, now))

	assert.True(t, strings.Contains(out, "PROXVENDA DASHBOARD"))
	assert.True(t, strings.Contains(out, "Lead Novo"))
	assert.True(t, strings.Contains(out, "1 leads"))
	assert.False(t, strings.Contains(out, "NEEDS ATTENTION"))
}
