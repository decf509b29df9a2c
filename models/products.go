package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Product struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	// Category holds the slug of an existing category. The reference is
	// checked once at creation time and never re-validated.
	Category string `bson:"category" json:"category"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
	InStock  bool   `bson:"in_stock" json:"in_stock"`
}
