package discountRepo

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

// MongoDiscountRepo implements DiscountRepository using MongoDB.
type MongoDiscountRepo struct {
	coll *mongo.Collection
}

// NewMongoDiscountRepo creates a new instance of DiscountRepository using MongoDB.
func NewMongoDiscountRepo() DiscountRepository {
	repo := &MongoDiscountRepo{coll: database.Collection("discounts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDiscountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new discount document.
func (r *MongoDiscountRepo) Create(discount *models.Discount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	discount.CreatedAt = now
	discount.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, discount); err != nil {
		return fmt.Errorf("failed to create discount: %w", err)
	}
	return nil
}

// Update modifies an existing discount document.
func (r *MongoDiscountRepo) Update(discount *models.Discount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	discount.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": discount.ID}, bson.M{"$set": discount})
	if err != nil {
		return fmt.Errorf("failed to update discount with id %s: %w", discount.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("discount with id %s not found", discount.ID)
	}
	return nil
}

// Delete removes a discount document by its ID.
func (r *MongoDiscountRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete discount with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("discount with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a discount by its unique ID.
func (r *MongoDiscountRepo) GetByID(id string) (*models.Discount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var discount models.Discount
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&discount); err != nil {
		return nil, fmt.Errorf("failed to fetch discount with id %s: %w", id, err)
	}
	return &discount, nil
}

// GetByCode retrieves a discount by its code. Returns nil, nil when absent.
func (r *MongoDiscountRepo) GetByCode(code string) (*models.Discount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var discount models.Discount
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&discount); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch discount with code %s: %w", code, err)
	}
	return &discount, nil
}

// GetAll retrieves all discounts, newest first.
func (r *MongoDiscountRepo) GetAll() ([]models.Discount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve discounts: %w", err)
	}
	defer cursor.Close(ctx)

	var discounts []models.Discount
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, fmt.Errorf("failed to decode discounts: %w", err)
	}
	return discounts, nil
}

// IncrementUsage atomically bumps the redemption counter for a code.
func (r *MongoDiscountRepo) IncrementUsage(code string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"used_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return fmt.Errorf("failed to increment usage for code %s: %w", code, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("discount with code %s not found", code)
	}
	return nil
}
