package moodboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"brief-engine/internal/store"
)

func TestMockImagesDeterministic(t *testing.T) {
	a := mockImages([]string{"urban", "nature"}, "1")
	b := mockImages([]string{"urban", "nature"}, "1")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("mock image ordering differs for identical input")
	}

	c := mockImages([]string{"urban", "nature"}, "2")
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should rotate the pool differently")
	}
	if len(a) != len(mockPool) {
		t.Errorf("mock set has %d images, want %d", len(a), len(mockPool))
	}
}

func TestSearchUsesCache(t *testing.T) {
	svc := NewService("", store.NewMemoryCache(), 5*time.Minute)
	ctx := context.Background()

	first, err := svc.Search(ctx, []string{"urban", "nature"}, "1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Search(ctx, []string{"urban", "nature"}, "1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from original")
	}

	if _, ok := svc.cache.Get(ctx, "moodboard:urban,nature-1"); !ok {
		t.Error("search result was not cached under the (keywords, seed) key")
	}
}

func TestFetchDedupAndPadding(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		query := r.URL.Query().Get("query")
		if auth := r.Header.Get("Authorization"); auth != "Client-ID test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		// Same photo id from every keyword query forces deduplication
		// and triggers the padding query
		photos := []map[string]any{
			{
				"id":              "dup",
				"alt_description": "repeated photo",
				"urls":            map[string]string{"regular": "r", "full": "f"},
				"user":            map[string]any{"name": "Ann"},
			},
		}
		if query == "creative abstract" {
			photos = []map[string]any{
				{
					"id":              "pad-1",
					"alt_description": "",
					"urls":            map[string]string{"regular": "r2", "full": "f2"},
					"user":            map[string]any{"name": "Bea"},
				},
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"results": photos})
	}))
	defer srv.Close()

	svc := NewService("test-key", store.NewMemoryCache(), time.Minute)
	svc.baseURL = srv.URL

	images := svc.fetch(context.Background(), []string{"urban", "nature", "music", "extra"}, "0")

	ids := map[string]int{}
	for _, img := range images {
		ids[img.ID]++
	}
	if ids["dup"] != 1 {
		t.Errorf("duplicate photo appeared %d times", ids["dup"])
	}
	if ids["pad-1"] != 1 {
		t.Error("padding query result missing")
	}
	// 3 keyword queries (fourth keyword dropped) + 1 padding query
	if got := atomic.LoadInt32(&calls); got != 4 {
		t.Errorf("provider called %d times, want 4", got)
	}
	// Fallback alt text comes from the query keyword
	for _, img := range images {
		if img.ID == "pad-1" && img.Alt != "creative" {
			t.Errorf("padding image alt = %q, want keyword fallback", img.Alt)
		}
	}
}
