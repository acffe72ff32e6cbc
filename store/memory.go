package store

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// Memory is an in-process Store used by tests as a stand-in for the
// MongoDB implementation. Values round-trip through bson so documents
// hold the same shapes either way.
type Memory struct {
	mu   sync.Mutex
	data map[string]map[string]bson.M
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]bson.M)}
}

func splitDocPath(path string) (string, string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return path, ""
	}
	return path[:i], path[i+1:]
}

func normalize(v interface{}) (interface{}, error) {
	t, data, err := bson.MarshalValue(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func toDoc(record interface{}) (bson.M, error) {
	data, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// setField and getField walk dotted bson paths, creating intermediate
// documents on write the way MongoDB does.
func setField(doc bson.M, key string, value interface{}) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := doc[p].(bson.M)
		if !ok {
			next = bson.M{}
			doc[p] = next
		}
		doc = next
	}
	doc[parts[len(parts)-1]] = value
}

func getField(doc bson.M, key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := doc[p].(bson.M)
		if !ok {
			return nil, false
		}
		doc = next
	}
	v, ok := doc[parts[len(parts)-1]]
	return v, ok
}

func (s *Memory) collection(name string) map[string]bson.M {
	col, ok := s.data[name]
	if !ok {
		col = make(map[string]bson.M)
		s.data[name] = col
	}
	return col
}

func (s *Memory) Set(ctx context.Context, path string, record interface{}) error {
	col, id := splitDocPath(path)
	doc, err := toDoc(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(col)[id] = doc
	return nil
}

func (s *Memory) Merge(ctx context.Context, path string, fields bson.M) error {
	col, id := splitDocPath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collection(col)[id]
	if !ok {
		doc = bson.M{}
		s.collection(col)[id] = doc
	}
	for k, v := range fields {
		nv, err := normalize(v)
		if err != nil {
			return err
		}
		setField(doc, k, nv)
	}
	return nil
}

func (s *Memory) Get(ctx context.Context, path string, out interface{}) (bool, error) {
	col, id := splitDocPath(path)
	s.mu.Lock()
	doc, ok := s.collection(col)[id]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return false, err
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Memory) Delete(ctx context.Context, path string) error {
	col, id := splitDocPath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collection(col), id)
	return nil
}

func (s *Memory) List(ctx context.Context, path string) (map[string]bson.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make(map[string]bson.Raw)
	for id, doc := range s.collection(path) {
		data, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		docs[id] = data
	}
	return docs, nil
}

func (s *Memory) Mutate(ctx context.Context, path string, m Mutation) error {
	col, id := splitDocPath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collection(col)[id]
	if !ok {
		return ErrNotFound
	}

	for k, v := range m.Set {
		nv, err := normalize(v)
		if err != nil {
			return err
		}
		setField(doc, k, nv)
	}
	for k, v := range m.Push {
		nv, err := normalize(v)
		if err != nil {
			return err
		}
		arr := bson.A{}
		if cur, ok := getField(doc, k); ok {
			if a, ok := cur.(bson.A); ok {
				arr = a
			}
		}
		setField(doc, k, append(arr, nv))
	}
	for k, v := range m.Pull {
		nv, err := normalize(v)
		if err != nil {
			return err
		}
		cur, ok := getField(doc, k)
		if !ok {
			continue
		}
		arr, ok := cur.(bson.A)
		if !ok {
			continue
		}
		kept := bson.A{}
		for _, el := range arr {
			if !reflect.DeepEqual(el, nv) {
				kept = append(kept, el)
			}
		}
		setField(doc, k, kept)
	}
	return nil
}
