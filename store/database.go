package store

import "go.mongodb.org/mongo-driver/mongo"

// NewDatabase returns the database named by the config. All health record
// collections live in a single database.
func NewDatabase(client *mongo.Client, cfg *Config) *mongo.Database {
	return client.Database(cfg.DatabaseName)
}
