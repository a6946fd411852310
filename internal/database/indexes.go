package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUserIndexes creates the uniqueness guards for the users collection:
// userId and email are hard-unique, referralId is unique when present.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	userIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetName("userId_unique").
			SetUnique(true),
	}
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}
	referralIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "referralId", Value: 1}},
		Options: options.Index().
			SetName("referralId_unique").
			SetUnique(true).
			SetSparse(true),
	}

	log.Println("EnsureUserIndexes: creating user indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{userIDIndex, emailIndex, referralIndex})
	if err != nil {
		log.Println("EnsureUserIndexes: user index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: user indexes created")
	return nil
}

// EnsureAddressIndexes creates the addressId unique index and the userId
// lookup index for the addresses collection.
func EnsureAddressIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("addresses").Indexes()

	addressIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "addressId", Value: 1}},
		Options: options.Index().
			SetName("addressId_unique").
			SetUnique(true),
	}
	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_index"),
	}

	log.Println("EnsureAddressIndexes: creating address indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{addressIDIndex, userIDIndex})
	if err != nil {
		log.Println("EnsureAddressIndexes: address index error:", err)
		return err
	}
	log.Println("EnsureAddressIndexes: address indexes created")
	return nil
}
