package store

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustRaw(t *testing.T, doc bson.M) bson.Raw {
	t.Helper()
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return data
}

func TestDocumentKey(t *testing.T) {
	id, err := documentKey(mustRaw(t, bson.M{"_id": "p1", "name": "x"}))
	if err != nil {
		t.Fatalf("documentKey: %v", err)
	}
	if id != "p1" {
		t.Errorf("id = %q, want p1", id)
	}
}

func TestDocumentKeyNonString(t *testing.T) {
	_, err := documentKey(mustRaw(t, bson.M{"_id": primitive.NewObjectID()}))
	if err == nil {
		t.Fatal("ObjectID key accepted")
	}
	if !strings.Contains(err.Error(), "non-string _id") {
		t.Errorf("err = %v", err)
	}
}

func TestDocumentKeyMissing(t *testing.T) {
	if _, err := documentKey(mustRaw(t, bson.M{"name": "x"})); err == nil {
		t.Fatal("document without _id accepted")
	}
}
