// Package marketing backs the marketing screen: campaign CRUD plus deferred
// dispatch through the task queue.
package marketing

import (
	"fmt"
	"time"

	campaignRepo "bizly/database/repository/campaign"
	customerRepo "bizly/database/repository/customer"
	"bizly/models"
	"bizly/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StateError reports an operation against a campaign in the wrong status,
// e.g. scheduling one that already went out.
type StateError struct {
	ID     string
	Status string
}

func (e StateError) Error() string {
	return fmt.Sprintf("campaign %s is %s", e.ID, e.Status)
}

// MarketingService manages campaigns.
type MarketingService interface {
	Create(campaign *models.Campaign) (*models.Campaign, error)
	Update(campaign *models.Campaign) (*models.Campaign, error)
	Delete(id string) error
	GetByID(id string) (*models.Campaign, error)
	List(status string) ([]models.Campaign, error)
	Schedule(id string, at time.Time) (*models.Campaign, error)
	Dispatch(id string) error
}

// DefaultMarketingService is the production MarketingService implementation.
type DefaultMarketingService struct {
	Repo      campaignRepo.CampaignRepository
	Customers customerRepo.CustomerRepository
	Queue     *asynq.Client
}

// Create inserts a draft campaign.
func (s *DefaultMarketingService) Create(campaign *models.Campaign) (*models.Campaign, error) {
	if campaign.Name == "" || campaign.Body == "" {
		return nil, fmt.Errorf("campaign name and body are required")
	}
	if campaign.Channel != "email" && campaign.Channel != "sms" {
		return nil, fmt.Errorf("campaign channel must be email or sms")
	}

	campaign.ID = uuid.New().String()
	campaign.Status = models.CampaignDraft
	if err := s.Repo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Update rewrites a draft campaign. Scheduled and sent campaigns are immutable.
func (s *DefaultMarketingService) Update(campaign *models.Campaign) (*models.Campaign, error) {
	current, err := s.Repo.GetByID(campaign.ID)
	if err != nil {
		return nil, err
	}
	if current.Status != models.CampaignDraft {
		return nil, StateError{ID: campaign.ID, Status: current.Status}
	}
	campaign.Status = models.CampaignDraft
	if err := s.Repo.Update(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete removes a campaign document.
func (s *DefaultMarketingService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetByID returns one campaign.
func (s *DefaultMarketingService) GetByID(id string) (*models.Campaign, error) {
	return s.Repo.GetByID(id)
}

// List returns campaigns, optionally filtered by status.
func (s *DefaultMarketingService) List(status string) ([]models.Campaign, error) {
	return s.Repo.GetAll(status)
}

// Schedule enqueues a dispatch task for a draft campaign and flips it to
// scheduled.
func (s *DefaultMarketingService) Schedule(id string, at time.Time) (*models.Campaign, error) {
	campaign, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignDraft {
		return nil, StateError{ID: id, Status: campaign.Status}
	}
	if at.Before(time.Now()) {
		return nil, fmt.Errorf("cannot schedule a campaign in the past")
	}

	task, opts, err := NewDispatchTask(id, at)
	if err != nil {
		return nil, fmt.Errorf("failed to build dispatch task: %w", err)
	}
	info, err := s.Queue.Enqueue(task, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue dispatch task: %w", err)
	}

	campaign.Status = models.CampaignScheduled
	campaign.ScheduledAt = &at
	campaign.TaskID = info.ID
	if err := s.Repo.Update(campaign); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("campaign scheduled",
		zap.String("id", id),
		zap.Time("at", at),
		zap.String("task_id", info.ID))
	return campaign, nil
}

// Dispatch resolves the audience and marks the campaign sent. Called from the
// queue worker when the scheduled task fires. Actual delivery goes through the
// configured email/SMS provider; the dashboard only tracks the send.
func (s *DefaultMarketingService) Dispatch(id string) error {
	campaign, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if campaign.Status == models.CampaignSent {
		// Duplicate delivery of the task; nothing to do.
		return nil
	}

	var audience []models.Customer
	if campaign.AudienceTag != "" {
		audience, err = s.Customers.GetByTag(campaign.AudienceTag)
	} else {
		audience, err = s.Customers.GetAll()
	}
	if err != nil {
		return fmt.Errorf("failed to resolve audience for campaign %s: %w", id, err)
	}

	if err := s.Repo.MarkSent(id, len(audience)); err != nil {
		return err
	}

	utils.GetLogger().Info("campaign dispatched",
		zap.String("id", id),
		zap.Int("recipients", len(audience)))
	return nil
}
