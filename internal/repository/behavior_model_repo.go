package repository

import (
	"context"
	"greenmind/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BehaviorModelRepo handles MongoDB operations for OCEAN behavior models
type BehaviorModelRepo interface {
	Create(ctx context.Context, m *model.BehaviorModel) error
	GetByID(ctx context.Context, id string) (*model.BehaviorModel, error)
	List(ctx context.Context) ([]*model.BehaviorModel, error)
	Update(ctx context.Context, m *model.BehaviorModel) error
	Delete(ctx context.Context, id string) error
}

type behaviorModelRepo struct {
	collection *mongo.Collection
}

// NewBehaviorModelRepo creates a new behavior model repository
func NewBehaviorModelRepo(db *mongo.Database) BehaviorModelRepo {
	return &behaviorModelRepo{
		collection: db.Collection("behavior_models"),
	}
}

func (r *behaviorModelRepo) Create(ctx context.Context, m *model.BehaviorModel) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

func (r *behaviorModelRepo) GetByID(ctx context.Context, id string) (*model.BehaviorModel, error) {
	var m model.BehaviorModel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *behaviorModelRepo) List(ctx context.Context) ([]*model.BehaviorModel, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*model.BehaviorModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (r *behaviorModelRepo) Update(ctx context.Context, m *model.BehaviorModel) error {
	m.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *behaviorModelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
