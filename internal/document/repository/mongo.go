package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gogotex/docstore/internal/document"
)

// MongoRepo stores documents in a MongoDB collection keyed by _id. Search is
// pushed down to the server as a query equivalent to document.Matches.
type MongoRepo struct {
	col *mongo.Collection
	settings
}

func NewMongoRepo(col *mongo.Collection, opts ...Option) *MongoRepo {
	// secondary indexes for the author and created criteria; failures only cost speed
	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author.id", Value: 1}}},
		{Keys: bson.D{{Key: "created", Value: 1}}},
	}
	_, _ = col.Indexes().CreateMany(context.Background(), idx)
	return &MongoRepo{col: col, settings: newSettings(opts)}
}

// Save upserts doc. created is only written on insert, so an existing record
// keeps its original value; the stored value is read back into doc.
func (m *MongoRepo) Save(ctx context.Context, doc *document.Document) (*document.Document, error) {
	if doc.ID == "" {
		doc.ID = m.ids.NewID()
	}
	created := doc.Created
	if created.IsZero() {
		created = m.now()
	}
	update := bson.M{
		"$set": bson.M{
			"title":   doc.Title,
			"content": doc.Content,
			"author":  doc.Author,
		},
		"$setOnInsert": bson.M{"created": created},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := m.col.UpdateOne(ctx, bson.M{"_id": doc.ID}, update, opts); err != nil {
		return nil, fmt.Errorf("upsert document: %w", err)
	}

	var stored document.Document
	if err := m.col.FindOne(ctx, bson.M{"_id": doc.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("read back document: %w", err)
	}
	doc.Created = stored.Created
	return doc, nil
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*document.Document, bool, error) {
	var d document.Document
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &d, true, nil
}

func (m *MongoRepo) Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error) {
	cur, err := m.col.Find(ctx, searchFilter(req))
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	out := []*document.Document{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return out, nil
}

// searchFilter translates req into a Mongo query. Vacuous groups add no clause.
func searchFilter(req *document.SearchRequest) bson.M {
	filter := bson.M{}
	if req == nil {
		return filter
	}

	var and bson.A
	if !req.TitlePrefixes.Vacuous() {
		and = append(and, anyPattern("title", "^", req.TitlePrefixes))
	}
	if !req.ContainsContents.Vacuous() {
		and = append(and, anyPattern("content", "", req.ContainsContents))
	}
	if !req.AuthorIDs.Vacuous() {
		and = append(and, bson.M{"author.id": bson.M{"$in": []string(req.AuthorIDs)}})
	}

	created := bson.M{}
	if req.CreatedFrom != nil {
		created["$gte"] = *req.CreatedFrom
	}
	if req.CreatedTo != nil {
		created["$lte"] = *req.CreatedTo
	}
	if len(created) > 0 {
		and = append(and, bson.M{"created": created})
	}

	if len(and) > 0 {
		filter["$and"] = and
	}
	return filter
}

// anyPattern ORs one escaped regex per value; $regex never matches a missing
// or null field.
func anyPattern(field, anchor string, values document.AnyOf) bson.M {
	or := make(bson.A, 0, len(values))
	for _, v := range values {
		or = append(or, bson.M{field: bson.M{"$regex": anchor + regexp.QuoteMeta(v)}})
	}
	return bson.M{"$or": or}
}
