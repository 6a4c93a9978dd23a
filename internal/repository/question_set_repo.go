package repository

import (
	"context"
	"greenmind/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionSetRepo handles MongoDB operations for question sets
type QuestionSetRepo interface {
	Create(ctx context.Context, set *model.QuestionSet) error
	GetByID(ctx context.Context, id string) (*model.QuestionSet, error)
	List(ctx context.Context) ([]*model.QuestionSet, error)
	Delete(ctx context.Context, id string) error
}

type questionSetRepo struct {
	collection *mongo.Collection
}

// NewQuestionSetRepo creates a new question set repository
func NewQuestionSetRepo(db *mongo.Database) QuestionSetRepo {
	return &questionSetRepo{
		collection: db.Collection("question_sets"),
	}
}

func (r *questionSetRepo) Create(ctx context.Context, set *model.QuestionSet) error {
	set.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, set)
	return err
}

func (r *questionSetRepo) GetByID(ctx context.Context, id string) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *questionSetRepo) List(ctx context.Context) ([]*model.QuestionSet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sets []*model.QuestionSet
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
