package repository

import (
	"context"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRecoveryPlanRepository implements RecoveryPlanRepository
type MongoRecoveryPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoRecoveryPlanRepository creates a new recovery plan repository
func NewMongoRecoveryPlanRepository(ctx context.Context, db *mongo.Database) (repository.RecoveryPlanRepository, error) {
	collection := db.Collection("recovery_plans")

	// Create index on generatedAt for recent-first queries
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "generatedAt", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, err
	}

	return &MongoRecoveryPlanRepository{
		collection: collection,
	}, nil
}

// Save stores a generated plan
func (r *MongoRecoveryPlanRepository) Save(ctx context.Context, plan *entity.RecoveryPlan) error {
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindRecent returns up to limit plans, newest first
func (r *MongoRecoveryPlanRepository) FindRecent(ctx context.Context, limit int) ([]*entity.RecoveryPlan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "generatedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := make([]*entity.RecoveryPlan, 0, limit)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
