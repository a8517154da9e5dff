package storage

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Lookup reads key and parses it. It returns ErrNotFound for a missing key
// and ErrMalformed for a value that is not valid JSON; callers fall back to
// their default on any error.
func Lookup(ctx context.Context, s Store, key string) (gjson.Result, error) {
	v, err := s.Get(ctx, key)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(v) {
		return gjson.Result{}, ErrMalformed
	}
	return gjson.Parse(v), nil
}

// Put JSON-encodes v and writes it under key.
func Put(ctx context.Context, s Store, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(b))
}
