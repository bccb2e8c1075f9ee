package server

import (
	"encoding/json"
	"image/color"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dungen/internal/dungeon"
	"dungen/internal/render"
)

const (
	defaultScale = 8
	maxScale     = 32
)

var costTint = color.RGBA{R: 255, G: 120, B: 40, A: 255}

// Server regenerates dungeons on demand and serves them as JSON or PNG. The
// base World is reused for requests without parameter overrides; the mutex
// serializes passes on it.
type Server struct {
	mu    sync.Mutex
	base  dungeon.Config
	world *dungeon.World
	store *Store
}

// New constructs a Server around the provided base configuration. The store
// may be nil to disable generation logging.
func New(cfg dungeon.Config, store *Store) (*Server, error) {
	world, err := dungeon.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{base: cfg, world: world, store: store}, nil
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dungeon", s.getDungeon)
		r.Get("/history", s.getHistory)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})
	r.Get("/dungeon.png", s.getDungeonPNG)
	r.Get("/costmap.png", s.getCostPNG)

	return r
}

type roomJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type dungeonJSON struct {
	Seed    int64      `json:"seed"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Rooms   []roomJSON `json:"rooms"`
	Links   [][2]int   `json:"links"`
	Tiles   []string   `json:"tiles"`
	MaxCost float64    `json:"max_cost"`
	Stats   statsJSON  `json:"stats"`
}

type statsJSON struct {
	RoomDeposits int `json:"room_deposits"`
	Connects     int `json:"connects"`
	PathDeposits int `json:"path_deposits"`
}

// snapshot copies everything the handlers need out of a World right after a
// generation pass, so no handler touches live state.
type snapshot struct {
	seed    int64
	width   int
	height  int
	rooms   []dungeon.Room
	links   [][2]int
	tiles   []uint8
	heat    []float32
	display []uint8
	maxCost float64
	stats   dungeon.GenStats
}

// queryKeys maps request parameters onto config option keys.
var queryKeys = map[string]string{
	"w":           "w",
	"h":           "h",
	"rooms":       "rooms",
	"min":         "min_room_dim",
	"max":         "max_room_dim",
	"room_weight": "room_weight",
	"path_weight": "path_weight",
	"extra":       "extra_link_chance",
}

// options collects generation overrides from the query string. It returns
// nil when the request carries none, which selects the shared base World.
func (s *Server) options(r *http.Request) map[string]string {
	var opts map[string]string
	q := r.URL.Query()
	for param, key := range queryKeys {
		v := q.Get(param)
		if v == "" {
			continue
		}
		if opts == nil {
			opts = s.baseOptions()
		}
		opts[key] = v
	}
	return opts
}

func (s *Server) baseOptions() map[string]string {
	p := s.base.Params
	return map[string]string{
		"w":                 strconv.Itoa(s.base.Width),
		"h":                 strconv.Itoa(s.base.Height),
		"seed":              strconv.FormatInt(s.base.Seed, 10),
		"rooms":             strconv.Itoa(p.TargetRoomCount),
		"min_room_dim":      strconv.Itoa(p.MinRoomDim),
		"max_room_dim":      strconv.Itoa(p.MaxRoomDim),
		"room_weight":       strconv.FormatFloat(p.RoomCostWeight, 'g', -1, 64),
		"path_weight":       strconv.FormatFloat(p.PathCostWeight, 'g', -1, 64),
		"extra_link_chance": strconv.FormatFloat(p.ExtraLinkChance, 'g', -1, 64),
	}
}

func (s *Server) generate(seed int64, opts map[string]string) (snapshot, error) {
	world := s.world
	if opts != nil {
		fresh, err := dungeon.NewWithConfig(dungeon.FromMap(opts))
		if err != nil {
			return snapshot{}, err
		}
		world = fresh
	} else {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	world.Reset(seed)
	size := world.Size()
	snap := snapshot{
		seed:    seed,
		width:   size.W,
		height:  size.H,
		rooms:   append([]dungeon.Room(nil), world.Rooms()...),
		links:   append([][2]int(nil), world.Links()...),
		tiles:   append([]uint8(nil), world.Tiles()...),
		heat:    append([]float32(nil), world.CostHeat()...),
		display: append([]uint8(nil), world.Cells()...),
		maxCost: world.MaxCost(),
		stats:   world.Stats(),
	}
	if snap.seed == 0 {
		snap.seed = world.Config().Seed
	}
	return snap, nil
}

func (s *Server) getDungeon(w http.ResponseWriter, r *http.Request) {
	seed, ok := parseSeed(w, r)
	if !ok {
		return
	}
	snap, err := s.generate(seed, s.options(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.store != nil {
		_, err := s.store.RecordGeneration(Generation{
			Seed:   snap.seed,
			Width:  snap.width,
			Height: snap.height,
			Rooms:  len(snap.rooms),
			Links:  len(snap.links),
		})
		if err != nil {
			log.Printf("server: record generation: %v", err)
		}
	}

	payload := dungeonJSON{
		Seed:    snap.seed,
		Width:   snap.width,
		Height:  snap.height,
		Rooms:   make([]roomJSON, len(snap.rooms)),
		Links:   snap.links,
		Tiles:   tileRows(snap.tiles, snap.width, snap.height),
		MaxCost: snap.maxCost,
		Stats: statsJSON{
			RoomDeposits: snap.stats.RoomDeposits,
			Connects:     snap.stats.Connects,
			PathDeposits: snap.stats.PathDeposits,
		},
	}
	if payload.Links == nil {
		payload.Links = [][2]int{}
	}
	for i, room := range snap.rooms {
		payload.Rooms[i] = roomJSON{X: room.X, Y: room.Y, W: room.W, H: room.H}
	}
	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) getDungeonPNG(w http.ResponseWriter, r *http.Request) {
	seed, ok := parseSeed(w, r)
	if !ok {
		return
	}
	scale := parseScale(r)
	snap, err := s.generate(seed, s.options(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	err = render.EncodeGridPNG(w, snap.display, s.world.Palette(), snap.width, snap.height, scale)
	if err != nil {
		log.Printf("server: encode dungeon png: %v", err)
	}
}

func (s *Server) getCostPNG(w http.ResponseWriter, r *http.Request) {
	seed, ok := parseSeed(w, r)
	if !ok {
		return
	}
	scale := parseScale(r)
	snap, err := s.generate(seed, s.options(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	err = render.EncodeHeatPNG(w, snap.heat, costTint, snap.width, snap.height, scale)
	if err != nil {
		log.Printf("server: encode cost png: %v", err)
	}
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotFound, "generation log disabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	generations, err := s.store.RecentGenerations(limit)
	if err != nil {
		log.Printf("server: history: %v", err)
		respondError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if generations == nil {
		generations = []Generation{}
	}
	respondJSON(w, http.StatusOK, generations)
}

func parseSeed(w http.ResponseWriter, r *http.Request) (int64, bool) {
	v := r.URL.Query().Get("seed")
	if v == "" {
		return 0, true
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid seed")
		return 0, false
	}
	return seed, true
}

func parseScale(r *http.Request) int {
	v := r.URL.Query().Get("scale")
	if v == "" {
		return defaultScale
	}
	scale, err := strconv.Atoi(v)
	if err != nil || scale <= 0 {
		return defaultScale
	}
	if scale > maxScale {
		scale = maxScale
	}
	return scale
}

// tileRows renders the tile layer as strings, one row per line, '#' for wall
// and '.' for floor.
func tileRows(tiles []uint8, width, height int) []string {
	rows := make([]string, height)
	buf := make([]byte, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if tiles[y*width+x] == 0 {
				buf[x] = '#'
			} else {
				buf[x] = '.'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("server: encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
