package database

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type condOp int

const (
	opEq condOp = iota
	opContainsFold
)

type cond struct {
	field string
	op    condOp
	value any
}

// Query is a small tagged filter: equality and case-insensitive substring
// conditions combined with AND. It keeps the query surface explicit instead
// of passing loose maps to the store.
type Query struct {
	conds []cond
}

func Where() Query { return Query{} }

// ByID matches a document by its store-assigned identifier.
func ByID(id bson.ObjectID) Query {
	return Where().Eq("_id", id)
}

func (q Query) Eq(field string, value any) Query {
	q.conds = append(q.conds, cond{field: field, op: opEq, value: value})
	return q
}

// ContainsFold matches documents whose field contains substr, ignoring case.
func (q Query) ContainsFold(field, substr string) Query {
	q.conds = append(q.conds, cond{field: field, op: opContainsFold, value: substr})
	return q
}

func (q Query) bson() bson.M {
	filter := bson.M{}
	for _, c := range q.conds {
		switch c.op {
		case opEq:
			filter[c.field] = c.value
		case opContainsFold:
			// QuoteMeta keeps this a substring match, not a user-supplied regex.
			filter[c.field] = bson.M{"$regex": regexp.QuoteMeta(c.value.(string)), "$options": "i"}
		}
	}
	return filter
}

// matches evaluates the query against a decoded document; used by Memory.
func (q Query) matches(doc bson.M) bool {
	for _, c := range q.conds {
		v, ok := doc[c.field]
		if !ok {
			return false
		}
		switch c.op {
		case opEq:
			if !equalValues(v, c.value) {
				return false
			}
		case opContainsFold:
			s, ok := v.(string)
			if !ok {
				return false
			}
			substr := c.value.(string)
			if !strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
				return false
			}
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if av, ok := a.(bson.ObjectID); ok {
		bv, ok := b.(bson.ObjectID)
		return ok && av == bv
	}
	return a == b
}
