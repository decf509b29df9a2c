package database

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type testDoc struct {
	Id    bson.ObjectID `bson:"_id,omitempty"`
	Slug  string        `bson:"slug"`
	Title string        `bson:"title"`
}

func TestMemoryInsertAndFindOne(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Insert(ctx, "category", testDoc{Slug: "shoes", Title: "Shoes"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id.IsZero() {
		t.Fatalf("expected assigned id")
	}

	var got testDoc
	if err := mem.FindOne(ctx, "category", ByID(id), &got); err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Slug != "shoes" || got.Id != id {
		t.Fatalf("unexpected doc: %+v", got)
	}

	if err := mem.FindOne(ctx, "category", Where().Eq("slug", "missing"), &got); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestMemoryFindManyLimit(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c"} {
		if _, err := mem.Insert(ctx, "category", testDoc{Slug: slug}); err != nil {
			t.Fatalf("insert %s: %v", slug, err)
		}
	}

	var docs []testDoc
	if err := mem.FindMany(ctx, "category", Where(), 2, &docs); err != nil {
		t.Fatalf("find many: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
}

func TestMemoryListCollectionNames(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	mem.Insert(ctx, "product", testDoc{Slug: "p"})
	mem.Insert(ctx, "category", testDoc{Slug: "c"})

	names, err := mem.ListCollectionNames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "category" || names[1] != "product" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestMemoryFail(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	boom := errors.New("boom")
	mem.Fail(boom)

	if _, err := mem.Insert(ctx, "category", testDoc{}); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if err := mem.Ping(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected injected error from ping, got %v", err)
	}

	mem.Fail(nil)
	if err := mem.Ping(ctx); err != nil {
		t.Fatalf("expected cleared error, got %v", err)
	}
}

func TestDisconnectedGateway(t *testing.T) {
	var g Gateway = Disconnected{}
	ctx := context.Background()

	if _, err := g.Insert(ctx, "category", testDoc{}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	var doc testDoc
	if err := g.FindOne(ctx, "category", Where(), &doc); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := g.Ping(ctx); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}
