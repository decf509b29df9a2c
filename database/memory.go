package database

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory is an in-process Gateway used by tests as a substitute for Mongo.
// Documents round-trip through bson so struct tags behave the same as with
// the real driver. Set Err via Fail to force every operation to fail.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	err         error
}

func NewMemory() *Memory {
	return &Memory{collections: map[string][]bson.M{}}
}

// Fail makes every subsequent operation return err (nil clears it).
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) Insert(_ context.Context, collection string, doc any) (bson.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return bson.NilObjectID, m.err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return bson.NilObjectID, err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return bson.NilObjectID, err
	}
	id := bson.NewObjectID()
	stored["_id"] = id
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *Memory) FindOne(_ context.Context, collection string, q Query, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, doc := range m.collections[collection] {
		if q.matches(doc) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNoDocument
}

func (m *Memory) FindMany(_ context.Context, collection string, q Query, limit int64, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	for _, doc := range m.collections[collection] {
		if int64(slice.Len()) >= limit {
			break
		}
		if !q.matches(doc) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (m *Memory) ListCollectionNames(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Count reports how many documents a collection holds; test helper.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
