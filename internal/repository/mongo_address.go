package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"userservice/internal/models"
)

// errNoDefaultTarget aborts a SetDefault transaction when the named address
// does not exist or belongs to another user, so the clearing write is rolled
// back instead of leaving the user with zero defaults.
var errNoDefaultTarget = errors.New("default target not found")

// MongoAddressRepository stores addresses in the "addresses" collection.
// Every path that flips an address to default runs the unset-all-then-set-one
// sequence inside a multi-document transaction, so two concurrent writes for
// the same owner can never commit two defaults.
type MongoAddressRepository struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoAddressRepository(db *mongo.Database) *MongoAddressRepository {
	return &MongoAddressRepository{
		client: db.Client(),
		col:    db.Collection("addresses"),
	}
}

func (r *MongoAddressRepository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {
	if address.AddressID == "" {
		address.AddressID = uuid.NewString()
	}
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	if !address.IsDefault {
		if _, err := r.col.InsertOne(ctx, address); err != nil {
			return nil, fmt.Errorf("insert address: %w", err)
		}
		return address, nil
	}

	_, err := r.inTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := r.clearDefaults(sc, address.UserID, ""); err != nil {
			return nil, err
		}
		if _, err := r.col.InsertOne(sc, address); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert default address: %w", err)
	}
	return address, nil
}

func (r *MongoAddressRepository) FindByID(ctx context.Context, addressID string) (*models.Address, error) {
	var address models.Address
	err := r.col.FindOne(ctx, bson.M{"addressId": addressID}).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &address, nil
}

func (r *MongoAddressRepository) Update(ctx context.Context, addressID string, data models.AddressUpdate) (*models.Address, error) {
	set := bson.M{"updatedAt": time.Now()}
	if data.Type != nil {
		set["type"] = *data.Type
	}
	if data.Street != nil {
		set["street"] = *data.Street
	}
	if data.StreetNumber != nil {
		set["streetNumber"] = *data.StreetNumber
	}
	if data.BuildingNumber != nil {
		set["buildingNumber"] = *data.BuildingNumber
	}
	if data.FloorNumber != nil {
		set["floorNumber"] = *data.FloorNumber
	}
	if data.Latitude != nil {
		set["latitude"] = *data.Latitude
	}
	if data.Longitude != nil {
		set["longitude"] = *data.Longitude
	}
	if data.ContactName != nil {
		set["contactName"] = *data.ContactName
	}
	if data.ContactPhone != nil {
		set["contactPhone"] = *data.ContactPhone
	}
	if data.IsDefault != nil {
		set["isDefault"] = *data.IsDefault
	}

	if data.IsDefault == nil || !*data.IsDefault {
		return r.findOneAndSet(ctx, addressID, set)
	}

	result, err := r.inTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		current, err := r.FindByID(sc, addressID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, errNoDefaultTarget
		}
		if err := r.clearDefaults(sc, current.UserID, addressID); err != nil {
			return nil, err
		}
		return r.findOneAndSet(sc, addressID, set)
	})
	if errors.Is(err, errNoDefaultTarget) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update default address: %w", err)
	}
	updated, _ := result.(*models.Address)
	return updated, nil
}

func (r *MongoAddressRepository) Delete(ctx context.Context, addressID string) (bool, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"addressId": addressID})
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoAddressRepository) FindByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	cursor, err := r.col.Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "isDefault", Value: -1}, {Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	addresses := []models.Address{}
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	return addresses, nil
}

func (r *MongoAddressRepository) SetDefault(ctx context.Context, userID, addressID string) (*models.Address, error) {
	result, err := r.inTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := r.clearDefaults(sc, userID, addressID); err != nil {
			return nil, err
		}

		var address models.Address
		err := r.col.FindOneAndUpdate(
			sc,
			bson.M{"addressId": addressID, "userId": userID},
			bson.M{"$set": bson.M{"isDefault": true, "updatedAt": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&address)
		if err == mongo.ErrNoDocuments {
			return nil, errNoDefaultTarget
		}
		if err != nil {
			return nil, err
		}
		return &address, nil
	})
	if errors.Is(err, errNoDefaultTarget) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set default address: %w", err)
	}
	return result.(*models.Address), nil
}

// clearDefaults unsets isDefault on every address of userID except keepID.
func (r *MongoAddressRepository) clearDefaults(ctx context.Context, userID, keepID string) error {
	filter := bson.M{"userId": userID, "isDefault": true}
	if keepID != "" {
		filter["addressId"] = bson.M{"$ne": keepID}
	}
	_, err := r.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isDefault": false}})
	return err
}

func (r *MongoAddressRepository) findOneAndSet(ctx context.Context, addressID string, set bson.M) (*models.Address, error) {
	var address models.Address
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"addressId": addressID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return &address, nil
}

func (r *MongoAddressRepository) inTransaction(ctx context.Context, fn func(mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
