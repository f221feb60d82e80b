package marketing

import (
	"encoding/json"
	"time"

	"bizly/models"

	"github.com/hibiken/asynq"
)

// TypeCampaignDispatch is the asynq task type for a scheduled campaign send.
const TypeCampaignDispatch = "campaign:dispatch"

// NewDispatchTask builds the deferred task that fires a campaign at its
// scheduled time.
func NewDispatchTask(campaignID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(models.DispatchPayload{CampaignID: campaignID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCampaignDispatch, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
