package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"dungen/internal/dungeon"
)

func testConfig() dungeon.Config {
	cfg := dungeon.DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Params.TargetRoomCount = 4
	return cfg
}

func newTestServer(t *testing.T, store *Store) *httptest.Server {
	t.Helper()
	srv, err := New(testConfig(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func getDungeonJSON(t *testing.T, ts *httptest.Server, query string) dungeonJSON {
	t.Helper()
	resp, err := http.Get(ts.URL + "/api/dungeon" + query)
	if err != nil {
		t.Fatalf("GET /api/dungeon: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/dungeon: status %d", resp.StatusCode)
	}
	var payload dungeonJSON
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return payload
}

func TestGetDungeon(t *testing.T) {
	ts := newTestServer(t, nil)
	payload := getDungeonJSON(t, ts, "?seed=5")

	if payload.Seed != 5 {
		t.Fatalf("seed not echoed: %d", payload.Seed)
	}
	if payload.Width != 32 || payload.Height != 24 {
		t.Fatalf("unexpected dimensions %dx%d", payload.Width, payload.Height)
	}
	if len(payload.Rooms) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(payload.Rooms))
	}
	if len(payload.Tiles) != 24 || len(payload.Tiles[0]) != 32 {
		t.Fatalf("tile rows have wrong shape: %d rows", len(payload.Tiles))
	}
	if payload.Stats.RoomDeposits != 4 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}
	if payload.Stats.Connects != len(payload.Links) {
		t.Fatalf("connects %d do not match links %d", payload.Stats.Connects, len(payload.Links))
	}
}

func TestGetDungeonDeterministic(t *testing.T) {
	ts := newTestServer(t, nil)
	a := getDungeonJSON(t, ts, "?seed=9")
	b := getDungeonJSON(t, ts, "?seed=9")

	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("row %d differs between identical requests", i)
		}
	}
}

func TestGetDungeonOverrides(t *testing.T) {
	ts := newTestServer(t, nil)
	payload := getDungeonJSON(t, ts, "?seed=3&w=20&h=16&rooms=2")

	if payload.Width != 20 || payload.Height != 16 {
		t.Fatalf("overrides not applied: %dx%d", payload.Width, payload.Height)
	}
	if len(payload.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(payload.Rooms))
	}
	if payload.MaxCost <= 0 {
		t.Fatalf("expected a positive cost peak, got %g", payload.MaxCost)
	}
}

func TestGetDungeonDefaultSeed(t *testing.T) {
	ts := newTestServer(t, nil)
	payload := getDungeonJSON(t, ts, "")
	if payload.Seed != testConfig().Seed {
		t.Fatalf("expected the configured seed, got %d", payload.Seed)
	}
}

func TestGetDungeonRejectsBadSeed(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/dungeon?seed=abc")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetDungeonPNG(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/dungeon.png?seed=7&scale=2")
	if err != nil {
		t.Fatalf("GET /dungeon.png: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
}

func TestGetCostPNG(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/costmap.png?seed=7&scale=1")
	if err != nil {
		t.Fatalf("GET /costmap.png: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestHistoryDisabledWithoutStore(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatalf("GET /api/history: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without a store, got %d", resp.StatusCode)
	}
}

func TestHistoryRecordsGenerations(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	ts := newTestServer(t, store)

	getDungeonJSON(t, ts, "?seed=1")
	getDungeonJSON(t, ts, "?seed=2")

	resp, err := http.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatalf("GET /api/history: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var generations []Generation
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(generations) != 2 {
		t.Fatalf("expected 2 logged generations, got %d", len(generations))
	}
	for _, g := range generations {
		if g.ID == "" {
			t.Fatal("generation logged without an id")
		}
		if g.Width != 32 || g.Height != 24 {
			t.Fatalf("unexpected dimensions in log: %+v", g)
		}
	}
}
