// ABOUTME: Follow-up scheduling and triage engine
// ABOUTME: Buckets leads into late/today/upcoming and handles date arithmetic
package crm

import (
	"time"

	"github.com/harperreed/proxvenda/models"
)

// TriageBuckets partitions the lead set by follow-up urgency. Every lead
// lands in exactly one bucket.
type TriageBuckets struct {
	Late     []models.Lead
	Today    []models.Lead
	Upcoming []models.Lead
}

// Pending returns how many leads need attention now.
func (b TriageBuckets) Pending() int {
	return len(b.Late) + len(b.Today)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Triage classifies leads by comparing each follow-up date against the
// reference day, both normalized to start-of-day. A missing follow-up date
// classifies as due today so the lead never disappears from the agenda.
// The partition is recomputed from scratch on every call.
func Triage(leads []models.Lead, now time.Time) TriageBuckets {
	var buckets TriageBuckets
	today := startOfDay(now)

	for _, lead := range leads {
		if lead.InterestDate.IsZero() {
			buckets.Today = append(buckets.Today, lead)
			continue
		}
		day := startOfDay(lead.InterestDate)
		switch {
		case day.Before(today):
			buckets.Late = append(buckets.Late, lead)
		case day.Equal(today):
			buckets.Today = append(buckets.Today, lead)
		default:
			buckets.Upcoming = append(buckets.Upcoming, lead)
		}
	}

	return buckets
}

// AdvanceFollowup pushes the lead's follow-up date seven days out, keeping
// the time of day. A lead without a follow-up date gets now+7d. The last
// contact date is untouched.
func AdvanceFollowup(lead *models.Lead, now time.Time) {
	base := lead.InterestDate
	if base.IsZero() {
		base = now
	}
	lead.InterestDate = base.AddDate(0, 0, 7)
}

// DaysSinceContact reports whole days since the last logged contact, for
// display ordering only. Same-day contact counts as zero; anything earlier
// rounds up.
func DaysSinceContact(lead *models.Lead, now time.Time) int {
	if lead.LastContact.IsZero() {
		return 0
	}
	if startOfDay(lead.LastContact).Equal(startOfDay(now)) {
		return 0
	}
	diff := now.Sub(lead.LastContact)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// RecordContact marks an outbound contact (e.g. a WhatsApp link opened)
// without logging a journal entry. Stage, status, and the follow-up date are
// untouched.
func RecordContact(lead *models.Lead, now time.Time) {
	lead.LastContact = now
}
