package repository

import (
	"context"
	"greenmind/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateRepo stores generated question templates
type TemplateRepo interface {
	CreateMany(ctx context.Context, templates []model.QuestionTemplate) error
	ListByModel(ctx context.Context, behaviorModelID string) ([]model.QuestionTemplate, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.QuestionTemplate, error)
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new question template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("question_templates"),
	}
}

func (r *templateRepo) CreateMany(ctx context.Context, templates []model.QuestionTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	docs := make([]interface{}, len(templates))
	for i := range templates {
		docs[i] = templates[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *templateRepo) ListByModel(ctx context.Context, behaviorModelID string) ([]model.QuestionTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"behaviorModelId": behaviorModelID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []model.QuestionTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) GetByIDs(ctx context.Context, ids []string) ([]model.QuestionTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []model.QuestionTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
