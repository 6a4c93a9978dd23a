package repository

import (
	"context"
	"greenmind/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeedbackRepo stores behavior feedback submitted for scenarios
type FeedbackRepo interface {
	Create(ctx context.Context, fb *model.Feedback) error
	ListByScenario(ctx context.Context, scenarioID string) ([]*model.Feedback, error)
}

type feedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{
		collection: db.Collection("feedback"),
	}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	if fb.SubmittedAt.IsZero() {
		fb.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, fb)
	return err
}

func (r *feedbackRepo) ListByScenario(ctx context.Context, scenarioID string) ([]*model.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"scenarioId": scenarioID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []*model.Feedback
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
