package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"userservice/internal/models"
)

// MongoUserRepository stores users in the "users" collection. Uniqueness of
// userId and email is enforced by the indexes created at startup.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Addresses == nil {
		user.Addresses = []string{}
	}

	result, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, userID string, data models.UserUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if data.FullName != nil {
		set["fullName"] = *data.FullName
	}
	if data.Phone != nil {
		set["phone"] = *data.Phone
	}
	if data.ProfileImage != nil {
		set["profileImage"] = *data.ProfileImage
	}
	if data.OnlineStatus != nil {
		set["onlineStatus"] = *data.OnlineStatus
	}
	if data.IsVerified != nil {
		set["isVerified"] = *data.IsVerified
	}
	return r.findOneAndSet(ctx, userID, set)
}

func (r *MongoUserRepository) UpdateStatus(ctx context.Context, userID string, status bool) (*models.User, error) {
	return r.findOneAndSet(ctx, userID, bson.M{"status": status, "updatedAt": time.Now()})
}

func (r *MongoUserRepository) UpdateProfileImage(ctx context.Context, userID string, profileImage string) (*models.User, error) {
	return r.findOneAndSet(ctx, userID, bson.M{"profileImage": profileImage, "updatedAt": time.Now()})
}

func (r *MongoUserRepository) findOneAndSet(ctx context.Context, userID string, set bson.M) (*models.User, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
