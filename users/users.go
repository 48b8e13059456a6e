// Package users is the account DAO over the users collection.
package users

import (
	"context"
	"errors"
	"time"

	"stagepass/db"
	"stagepass/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByEmail returns nil, nil when no account exists.
func FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert stores a brand-new account.
func Insert(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.FollowedArtists == nil {
		user.FollowedArtists = []models.FollowedArtist{}
	}
	if user.FollowedEvents == nil {
		user.FollowedEvents = []string{}
	}
	_, err := db.UserCollection.InsertOne(ctx, user)
	return err
}

// UpdateFields sets the given fields on the account identified by email
// and returns the updated document.
func UpdateFields(ctx context.Context, email string, fields bson.M) (*models.User, error) {
	fields["updatedAt"] = time.Now()

	var updated models.User
	err := db.UserCollection.FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
