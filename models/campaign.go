package models

import "time"

// Campaign statuses.
const (
	CampaignDraft     = "draft"
	CampaignScheduled = "scheduled"
	CampaignSent      = "sent"
)

// Campaign is one marketing blast managed from the marketing screen.
// An empty AudienceTag targets every customer.
type Campaign struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Channel     string     `bson:"channel" json:"channel"` // email | sms
	Subject     string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Body        string     `bson:"body" json:"body"`
	AudienceTag string     `bson:"audience_tag,omitempty" json:"audience_tag,omitempty"`
	Status      string     `bson:"status" json:"status"` // draft | scheduled | sent
	ScheduledAt *time.Time `bson:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
	SentAt      *time.Time `bson:"sent_at,omitempty" json:"sent_at,omitempty"`
	Recipients  int        `bson:"recipients" json:"recipients"`
	TaskID      string     `bson:"task_id,omitempty" json:"task_id,omitempty"` // asynq task id while scheduled
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// DispatchPayload is the task body enqueued when a campaign is scheduled.
type DispatchPayload struct {
	CampaignID string `json:"campaign_id"`
}
