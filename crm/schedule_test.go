// ABOUTME: Tests for the triage engine and follow-up date arithmetic
// ABOUTME: Validates bucket partitioning, +7d advance, and days-since-contact
package crm

import (
	"testing"
	"time"

	"github.com/harperreed/proxvenda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDay = time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)

func leadDueOn(name string, interest time.Time) models.Lead {
	return models.Lead{ID: name, Name: name, InterestDate: interest}
}

func TestTriagePartition(t *testing.T) {
	leads := []models.Lead{
		leadDueOn("yesterday", refDay.AddDate(0, 0, -1)),
		leadDueOn("last-week", refDay.AddDate(0, 0, -7)),
		leadDueOn("today-morning", time.Date(2024, 6, 15, 0, 0, 1, 0, time.Local)),
		leadDueOn("today-night", time.Date(2024, 6, 15, 23, 59, 59, 0, time.Local)),
		leadDueOn("tomorrow", refDay.AddDate(0, 0, 1)),
	}

	buckets := Triage(leads, refDay)

	assert.Len(t, buckets.Late, 2)
	assert.Len(t, buckets.Today, 2)
	assert.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, 4, buckets.Pending())

	// The buckets must partition the full set: no overlap, no omission
	total := len(buckets.Late) + len(buckets.Today) + len(buckets.Upcoming)
	assert.Equal(t, len(leads), total)

	seen := map[string]int{}
	for _, bucket := range [][]models.Lead{buckets.Late, buckets.Today, buckets.Upcoming} {
		for _, l := range bucket {
			seen[l.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "lead %s appears in %d buckets", id, n)
	}
}

func TestTriageMissingDateIsDueToday(t *testing.T) {
	leads := []models.Lead{{ID: "no-date", Name: "Sem Data"}}

	buckets := Triage(leads, refDay)

	require.Len(t, buckets.Today, 1)
	assert.Empty(t, buckets.Late)
	assert.Empty(t, buckets.Upcoming)
}

func TestTriageEmpty(t *testing.T) {
	buckets := Triage(nil, refDay)
	assert.Zero(t, buckets.Pending())
	assert.Empty(t, buckets.Upcoming)
}

func TestAdvanceFollowupPreservesTimeOfDay(t *testing.T) {
	lead := models.Lead{InterestDate: time.Date(2024, 6, 10, 14, 45, 30, 0, time.Local)}

	AdvanceFollowup(&lead, refDay)

	assert.Equal(t, time.Date(2024, 6, 17, 14, 45, 30, 0, time.Local), lead.InterestDate)
}

func TestAdvanceFollowupTwiceIsFourteenDays(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	lead := models.Lead{InterestDate: start}

	AdvanceFollowup(&lead, refDay)
	AdvanceFollowup(&lead, refDay)

	assert.Equal(t, start.AddDate(0, 0, 14), lead.InterestDate)
}

func TestAdvanceFollowupWithoutDate(t *testing.T) {
	lead := models.Lead{}

	AdvanceFollowup(&lead, refDay)

	assert.Equal(t, refDay.AddDate(0, 0, 7), lead.InterestDate)
}

func TestAdvanceFollowupDoesNotTouchLastContact(t *testing.T) {
	contacted := refDay.AddDate(0, 0, -3)
	lead := models.Lead{InterestDate: refDay, LastContact: contacted}

	AdvanceFollowup(&lead, refDay)

	assert.Equal(t, contacted, lead.LastContact)
}

func TestDaysSinceContact(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		want int
	}{
		{"same day", time.Date(2024, 6, 15, 8, 0, 0, 0, time.Local), 0},
		{"yesterday", refDay.AddDate(0, 0, -1), 1},
		{"thirty hours ago", refDay.Add(-30 * time.Hour), 2},
		{"a week ago", refDay.AddDate(0, 0, -7), 7},
		{"never contacted", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := models.Lead{LastContact: tt.last}
			assert.Equal(t, tt.want, DaysSinceContact(&lead, refDay))
		})
	}
}

func TestRecordContact(t *testing.T) {
	lead := models.Lead{
		StageID:      "s1",
		Status:       models.StatusActive,
		InterestDate: refDay.AddDate(0, 0, 2),
	}

	RecordContact(&lead, refDay)

	assert.Equal(t, refDay, lead.LastContact)
	assert.Equal(t, "s1", lead.StageID)
	assert.Equal(t, models.StatusActive, lead.Status)
	assert.Equal(t, refDay.AddDate(0, 0, 2), lead.InterestDate)
	assert.Empty(t, lead.History)
}
