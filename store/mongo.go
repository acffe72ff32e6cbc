package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collections maps a path prefix to its MongoDB collection.
var collections = map[string]string{
	"users/customer":    "customers",
	"users/admin":       "admins",
	"users/deliveryman": "deliverymen",
	"products":          "products",
}

type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (s *Mongo) resolve(path string) (*mongo.Collection, string, error) {
	for prefix, name := range collections {
		if path == prefix {
			return s.db.Collection(name), "", nil
		}
		if strings.HasPrefix(path, prefix+"/") {
			id := strings.TrimPrefix(path, prefix+"/")
			if id == "" || strings.Contains(id, "/") {
				return nil, "", fmt.Errorf("store: invalid document path %q", path)
			}
			return s.db.Collection(name), id, nil
		}
	}
	return nil, "", fmt.Errorf("store: unknown path %q", path)
}

func (s *Mongo) document(path string) (*mongo.Collection, string, error) {
	col, id, err := s.resolve(path)
	if err != nil {
		return nil, "", err
	}
	if id == "" {
		return nil, "", fmt.Errorf("store: %q does not address a document", path)
	}
	return col, id, nil
}

func (s *Mongo) Set(ctx context.Context, path string, record interface{}) error {
	col, id, err := s.document(path)
	if err != nil {
		return err
	}
	_, err = col.ReplaceOne(ctx, bson.M{"_id": id}, record, options.Replace().SetUpsert(true))
	return err
}

func (s *Mongo) Merge(ctx context.Context, path string, fields bson.M) error {
	col, id, err := s.document(path)
	if err != nil {
		return err
	}
	_, err = col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	return err
}

func (s *Mongo) Get(ctx context.Context, path string, out interface{}) (bool, error) {
	col, id, err := s.document(path)
	if err != nil {
		return false, err
	}
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Mongo) Delete(ctx context.Context, path string) error {
	col, id, err := s.document(path)
	if err != nil {
		return err
	}
	_, err = col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Mongo) List(ctx context.Context, path string) (map[string]bson.Raw, error) {
	col, id, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	if id != "" {
		return nil, fmt.Errorf("store: %q does not address a collection", path)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make(map[string]bson.Raw)
	for cursor.Next(ctx) {
		raw := make(bson.Raw, len(cursor.Current))
		copy(raw, cursor.Current)
		id, err := documentKey(raw)
		if err != nil {
			return nil, fmt.Errorf("store: %s in %q", err, path)
		}
		docs[id] = raw
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// documentKey extracts the string _id a listed document is keyed by.
// Documents inserted out-of-band can carry ids of any bson type.
func documentKey(raw bson.Raw) (string, error) {
	key, err := raw.LookupErr("_id")
	if err != nil {
		return "", errors.New("document without _id")
	}
	id, ok := key.StringValueOK()
	if !ok {
		return "", fmt.Errorf("document with non-string _id of type %s", key.Type)
	}
	return id, nil
}

func (s *Mongo) Mutate(ctx context.Context, path string, m Mutation) error {
	col, id, err := s.document(path)
	if err != nil {
		return err
	}

	update := bson.M{}
	if len(m.Set) > 0 {
		update["$set"] = m.Set
	}
	if len(m.Push) > 0 {
		update["$push"] = m.Push
	}
	if len(m.Pull) > 0 {
		update["$pull"] = m.Pull
	}
	if len(update) == 0 {
		return nil
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
