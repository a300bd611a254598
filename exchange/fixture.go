package exchange

import (
	"fmt"
	"time"
)

// SampleDataset builds a small self-consistent dataset for demos and tests:
// a six-person org, a dozen emails and four meetings, two of which overlap
// on the given day. Timestamps are generated relative to now so "today"
// queries behave the same whenever the demo runs.
func SampleDataset(now time.Time) *Dataset {
	day := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	nextWeek := now.AddDate(0, 0, 5).Format("2006-01-02")

	at := func(date, clock string) string { return fmt.Sprintf("%sT%s", date, clock) }

	users := map[string]User{
		"u-alex":  {ID: "u-alex", DisplayName: "Alex Morgan", Email: "alex.morgan@contoso.com", Department: "Data Platform", JobTitle: "Engineering Manager"},
		"u-priya": {ID: "u-priya", DisplayName: "Priya Patel", Email: "priya.patel@contoso.com", Department: "Data Platform", JobTitle: "Senior Data Engineer"},
		"u-marco": {ID: "u-marco", DisplayName: "Marco Ruiz", Email: "marco.ruiz@contoso.com", Department: "Infrastructure", JobTitle: "SRE"},
		"u-jess":  {ID: "u-jess", DisplayName: "Jess Chen", Email: "jess.chen@contoso.com", Department: "Analytics", JobTitle: "Analytics Lead"},
		"u-sam":   {ID: "u-sam", DisplayName: "Sam Okafor", Email: "sam.okafor@contoso.com", Department: "Finance", JobTitle: "Finance Partner"},
		"u-lena":  {ID: "u-lena", DisplayName: "Lena Fischer", Email: "lena.fischer@contoso.com", Department: "Data Platform", JobTitle: "Data Engineer"},
	}

	emails := map[string]Email{
		"e-1": {
			ID: "e-1", Subject: "Spark pipeline tuning results", From: "priya.patel@contoso.com", FromName: "Priya Patel",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox", Importance: "High",
			ReceivedDate: at(yesterday, "16:42:00"),
			Body:         "The pipeline optimization cut the nightly Spark job from 4h to 1h50m. Remaining bottleneck is the shuffle on the orders join.",
		},
		"e-2": {
			ID: "e-2", Subject: "Re: Spark executor OOMs", From: "priya.patel@contoso.com", FromName: "Priya Patel",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox", IsRead: true,
			ReceivedDate: at(yesterday, "11:05:00"),
			Body:         "Bumping executor memory masked it; the real fix is repartitioning the pipeline input before the wide join.",
		},
		"e-3": {
			ID: "e-3", Subject: "Kubernetes upgrade window", From: "marco.ruiz@contoso.com", FromName: "Marco Ruiz",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox",
			ReceivedDate: at(yesterday, "09:30:00"),
			Body:         "Proposing Saturday 06:00 for the cluster upgrade. Spark workloads drain automatically, the pipeline jobs need a manual pause.",
		},
		"e-4": {
			ID: "e-4", Subject: "Q3 budget review prep", From: "sam.okafor@contoso.com", FromName: "Sam Okafor",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox", Importance: "High",
			ReceivedDate: at(day, "08:15:00"),
			Body:         "Attached the budget worksheet. Biggest line item is the new cluster capacity; bring the cost breakdown to the review.",
		},
		"e-5": {
			ID: "e-5", Subject: "Dashboard refresh broken", From: "jess.chen@contoso.com", FromName: "Jess Chen",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox",
			ReceivedDate: at(day, "07:58:00"),
			Body:         "The analytics dashboard has not refreshed since the pipeline schema change. Can someone from your side take a look?",
		},
		"e-6": {
			ID: "e-6", Subject: "Re: Dashboard refresh broken", From: "alex.morgan@contoso.com", FromName: "Alex Morgan",
			To: "jess.chen@contoso.com", ToName: "Jess Chen", FolderPath: "Sent Items",
			ReceivedDate: at(day, "08:20:00"),
			Body:         "Lena is on it; the pipeline schema migration missed the dashboard views.",
		},
		"e-7": {
			ID: "e-7", Subject: "Migration runbook draft", From: "lena.fischer@contoso.com", FromName: "Lena Fischer",
			To: "alex.morgan@contoso.com", ToName: "Alex Morgan", FolderPath: "Inbox", IsRead: true,
			ReceivedDate: at(yesterday, "15:10:00"),
			Body:         "Draft runbook for the warehouse migration. Covers schema cutover, pipeline backfill and rollback steps.",
		},
		"e-8": {
			ID: "e-8", Subject: "Cluster cost breakdown", From: "alex.morgan@contoso.com", FromName: "Alex Morgan",
			To: "sam.okafor@contoso.com", ToName: "Sam Okafor", FolderPath: "Sent Items",
			ReceivedDate: at(yesterday, "17:30:00"),
			Body:         "Cost breakdown by workload: Spark 62%, dashboards 21%, ad hoc 17%. Budget notes inline.",
		},
	}

	meetings := map[string]Meeting{
		"m-1": {
			ID: "m-1", Subject: "Spark Pipeline Sync", Organizer: "priya.patel@contoso.com", OrganizerName: "Priya Patel",
			StartTime: at(day, "10:00:00"), EndTime: at(day, "10:30:00"), Location: "Room 4A",
			Body:      "Review spark pipeline throughput and the shuffle bottleneck fix.",
			Attendees: []string{"alex.morgan@contoso.com", "priya.patel@contoso.com", "lena.fischer@contoso.com"},
		},
		"m-2": {
			ID: "m-2", Subject: "Q3 Budget Review", Organizer: "sam.okafor@contoso.com", OrganizerName: "Sam Okafor",
			StartTime: at(day, "10:15:00"), EndTime: at(day, "11:00:00"), Location: "Room 2B",
			Body:      "Walk through the budget worksheet and cluster cost breakdown.",
			Attendees: []string{"alex.morgan@contoso.com", "sam.okafor@contoso.com"},
		},
		"m-3": {
			ID: "m-3", Subject: "Analytics Dashboard Handover", Organizer: "jess.chen@contoso.com", OrganizerName: "Jess Chen",
			StartTime: at(day, "14:00:00"), EndTime: at(day, "14:45:00"), Location: "Online",
			Body:      "Handover of the dashboard refresh job after the pipeline schema change.",
			Attendees: []string{"alex.morgan@contoso.com", "jess.chen@contoso.com", "lena.fischer@contoso.com"},
		},
		"m-4": {
			ID: "m-4", Subject: "Warehouse Migration Planning", Organizer: "lena.fischer@contoso.com", OrganizerName: "Lena Fischer",
			StartTime: at(nextWeek, "09:00:00"), EndTime: at(nextWeek, "10:00:00"), Location: "Room 4A",
			Body:      "Schema cutover plan, backfill sequencing and rollback criteria.",
			Attendees: []string{"alex.morgan@contoso.com", "lena.fischer@contoso.com", "priya.patel@contoso.com"},
		},
	}

	return &Dataset{
		Protagonist: users["u-alex"],
		Users:       users,
		Emails:      emails,
		Meetings:    meetings,
	}
}
