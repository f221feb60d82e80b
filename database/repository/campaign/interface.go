package campaignRepo

import "bizly/models"

// CampaignRepository defines persistence for marketing campaigns.
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	Update(campaign *models.Campaign) error
	Delete(id string) error
	GetByID(id string) (*models.Campaign, error)
	GetAll(status string) ([]models.Campaign, error)
	MarkSent(id string, recipients int) error
}
