package campaignRepo

import (
	"context"
	"fmt"
	"time"

	"bizly/database"
	"bizly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCampaignRepo implements CampaignRepository using MongoDB.
type MongoCampaignRepo struct {
	coll *mongo.Collection
}

// NewMongoCampaignRepo creates a new instance of CampaignRepository using MongoDB.
func NewMongoCampaignRepo() CampaignRepository {
	repo := &MongoCampaignRepo{coll: database.Collection("campaigns")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCampaignRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new campaign document.
func (r *MongoCampaignRepo) Create(campaign *models.Campaign) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// Update modifies an existing campaign document.
func (r *MongoCampaignRepo) Update(campaign *models.Campaign) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	campaign.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": campaign.ID}, bson.M{"$set": campaign})
	if err != nil {
		return fmt.Errorf("failed to update campaign with id %s: %w", campaign.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", campaign.ID)
	}
	return nil
}

// Delete removes a campaign document by its ID.
func (r *MongoCampaignRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete campaign with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a campaign by its unique ID.
func (r *MongoCampaignRepo) GetByID(id string) (*models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var campaign models.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&campaign); err != nil {
		return nil, fmt.Errorf("failed to fetch campaign with id %s: %w", id, err)
	}
	return &campaign, nil
}

// GetAll retrieves campaigns, optionally filtered by status, newest first.
func (r *MongoCampaignRepo) GetAll(status string) ([]models.Campaign, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}
	return campaigns, nil
}

// MarkSent flips a campaign to sent with its resolved recipient count.
func (r *MongoCampaignRepo) MarkSent(id string, recipients int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":     models.CampaignSent,
		"sent_at":    now,
		"recipients": recipients,
		"updated_at": now,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark campaign %s sent: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("campaign with id %s not found", id)
	}
	return nil
}
