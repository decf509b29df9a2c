package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ErrNoDocument is returned by FindOne when no document matches.
var ErrNoDocument = errors.New("database: no matching document")

// ErrNotConnected is returned by every operation when no connection was
// established at startup.
var ErrNotConnected = errors.New("database: not connected")

// Gateway is the storage surface the controllers talk to. The real
// implementation is Mongo; Memory substitutes it in tests and Disconnected
// stands in when startup connection fails.
type Gateway interface {
	Insert(ctx context.Context, collection string, doc any) (bson.ObjectID, error)
	FindOne(ctx context.Context, collection string, q Query, out any) error
	// FindMany decodes at most limit matching documents into out (a pointer
	// to a slice). Ordering is store-native and not guaranteed stable.
	FindMany(ctx context.Context, collection string, q Query, limit int64, out any) error
	ListCollectionNames(ctx context.Context) ([]string, error)
	Name() string
	Ping(ctx context.Context) error
}

// Mongo implements Gateway over a single client connected at startup and
// reused for the process lifetime.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, databaseName string) (*Mongo, error) {
	if uri == "" {
		return nil, errors.New("database: MONGODB_URI is not set")
	}
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	return &Mongo{client: client, db: client.Database(databaseName)}, nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (bson.ObjectID, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("database: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, q Query, out any) error {
	err := m.db.Collection(collection).FindOne(ctx, q.bson()).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	return err
}

func (m *Mongo) FindMany(ctx context.Context, collection string, q Query, limit int64, out any) error {
	cursor, err := m.db.Collection(collection).Find(ctx, q.bson(), options.Find().SetLimit(limit))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Disconnected is the gateway used when no storage connection could be
// established; the server keeps running and /test reports the state.
type Disconnected struct{}

func (Disconnected) Insert(context.Context, string, any) (bson.ObjectID, error) {
	return bson.NilObjectID, ErrNotConnected
}

func (Disconnected) FindOne(context.Context, string, Query, any) error { return ErrNotConnected }

func (Disconnected) FindMany(context.Context, string, Query, int64, any) error {
	return ErrNotConnected
}

func (Disconnected) ListCollectionNames(context.Context) ([]string, error) {
	return nil, ErrNotConnected
}

func (Disconnected) Name() string { return "" }

func (Disconnected) Ping(context.Context) error { return ErrNotConnected }
