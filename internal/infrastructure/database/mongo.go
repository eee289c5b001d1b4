package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenMongo connects to the document store that holds mechanic profiles.
func OpenMongo(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

// EnsureMechanicIndexes creates the indexes the mechanic collection relies
// on. The userId index is unique so an account can only own one profile.
func EnsureMechanicIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("mechanics").Indexes()

	userIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetName("userId_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"userId": bson.M{"$type": "string"},
			}),
	}

	pincodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "pincode", Value: 1}},
		Options: options.Index().SetName("pincode_index"),
	}

	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{userIDIndex, pincodeIndex})
	return err
}
