// Package query turns room listing parameters into a store filter and a
// pagination window.
//
// Every predicate carries two renditions with the same meaning: a BSON
// document for the store and Matches for in-memory evaluation. A Filter is
// an immutable conjunction of predicates, so the listing and the count of a
// request always share one value.
package query

import (
	"go.mongodb.org/mongo-driver/bson"

	"splendico/pkg/model"
)

type Predicate interface {
	BSON() bson.D
	Matches(room model.Room) bool
}

type CategoryEquals struct {
	Category string
}

func (p CategoryEquals) BSON() bson.D {
	return bson.D{{Key: "category", Value: p.Category}}
}

func (p CategoryEquals) Matches(room model.Room) bool {
	return room.Category == p.Category
}

// PriceBetween is inclusive on both ends.
type PriceBetween struct {
	Min float64
	Max float64
}

func (p PriceBetween) BSON() bson.D {
	return bson.D{{Key: "price", Value: bson.D{
		{Key: "$gte", Value: p.Min},
		{Key: "$lte", Value: p.Max},
	}}}
}

func (p PriceBetween) Matches(room model.Room) bool {
	return room.Price >= p.Min && room.Price <= p.Max
}

type AvailabilityEquals struct {
	Status string
}

func (p AvailabilityEquals) BSON() bson.D {
	return bson.D{{Key: "available", Value: p.Status}}
}

func (p AvailabilityEquals) Matches(room model.Room) bool {
	return room.Available == p.Status
}

// Filter is the AND of its predicates. The zero value matches everything.
type Filter struct {
	predicates []Predicate
}

func NewFilter(predicates ...Predicate) Filter {
	var f Filter
	for _, p := range predicates {
		f = f.And(p)
	}
	return f
}

// And returns a new filter with p appended; f is left unchanged.
func (f Filter) And(p Predicate) Filter {
	if p == nil {
		return f
	}
	next := make([]Predicate, len(f.predicates), len(f.predicates)+1)
	copy(next, f.predicates)
	return Filter{predicates: append(next, p)}
}

func (f Filter) Len() int {
	return len(f.predicates)
}

func (f Filter) Predicates() []Predicate {
	out := make([]Predicate, len(f.predicates))
	copy(out, f.predicates)
	return out
}

// BSON renders {} for no predicates, the predicate itself for one and
// {$and: [...]} otherwise.
func (f Filter) BSON() bson.D {
	switch len(f.predicates) {
	case 0:
		return bson.D{}
	case 1:
		return f.predicates[0].BSON()
	}

	clauses := make(bson.A, 0, len(f.predicates))
	for _, p := range f.predicates {
		clauses = append(clauses, p.BSON())
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

func (f Filter) Matches(room model.Room) bool {
	for _, p := range f.predicates {
		if !p.Matches(room) {
			return false
		}
	}
	return true
}
