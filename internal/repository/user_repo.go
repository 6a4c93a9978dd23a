package repository

import (
	"context"
	"greenmind/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepo reads the survey population from MongoDB
type UserRepo interface {
	List(ctx context.Context) ([]model.User, error)
	UpsertMany(ctx context.Context, users []model.User) (int, error)
}

type userRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection("users"),
	}
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertMany writes users by id and returns how many were inserted or changed
func (r *userRepo) UpsertMany(ctx context.Context, users []model.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	writes := make([]mongo.WriteModel, 0, len(users))
	for _, u := range users {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": u.ID}).
			SetReplacement(u).
			SetUpsert(true))
	}
	res, err := r.collection.BulkWrite(ctx, writes)
	if err != nil {
		return 0, err
	}
	return int(res.UpsertedCount + res.ModifiedCount), nil
}
