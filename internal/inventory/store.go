package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	logx "github.com/carbot-pro/server/pkg/logger"
)

// DefaultMaxResults bounds a search when the caller does not say otherwise.
const DefaultMaxResults = 8

// Store owns the vehicle catalog loaded from a flat CSV table and the search
// cache in front of it. All public methods are safe for concurrent use: the
// catalog is read-heavy with rare writes from Reserve, the cache carries its
// own lock.
type Store struct {
	mu      sync.RWMutex
	csvPath string
	catalog []Vehicle
	bodyCol string // header spelling resolved at load time

	cache *searchCache
	now   func() time.Time
}

// NewStore creates a store bound to the given CSV path. The catalog is empty
// until Load succeeds.
func NewStore(csvPath string) *Store {
	return newStoreWithClock(csvPath, time.Now)
}

func newStoreWithClock(csvPath string, now func() time.Time) *Store {
	return &Store{
		csvPath: csvPath,
		bodyCol: "body_styles",
		cache:   newSearchCache(searchCacheTTL, searchCacheCapacity, now),
		now:     now,
	}
}

// Load reads the backing table fully into memory. It returns false, leaving
// the previous catalog untouched, when the file is missing or malformed; a
// load never partially overwrites.
func (s *Store) Load() bool {
	f, err := os.Open(s.csvPath)
	if err != nil {
		logx.Error().Err(err).Str("path", s.csvPath).Msg("inventory file not found")
		return false
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		logx.Error().Err(err).Str("path", s.csvPath).Msg("failed to parse inventory csv")
		return false
	}
	if len(records) == 0 {
		logx.Error().Str("path", s.csvPath).Msg("inventory csv has no header")
		return false
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	// Two historical spellings exist for the body style column; resolve
	// once here instead of per access.
	bodyCol := ""
	for _, name := range []string{"body_styles", "body_style"} {
		if _, ok := cols[name]; ok {
			bodyCol = name
			break
		}
	}

	for _, name := range []string{"vin", "make", "model", "year", "price"} {
		if _, ok := cols[name]; !ok {
			logx.Error().Str("path", s.csvPath).Str("column", name).Msg("inventory csv missing required column")
			return false
		}
	}
	if bodyCol == "" {
		logx.Error().Str("path", s.csvPath).Msg("inventory csv missing body style column")
		return false
	}

	catalog := make([]Vehicle, 0, len(records)-1)
	seen := make(map[string]struct{}, len(records)-1)
	for i, row := range records[1:] {
		v, err := parseRow(row, cols, bodyCol)
		if err != nil {
			logx.Error().Err(err).Int("row", i+1).Str("path", s.csvPath).Msg("malformed inventory row")
			return false
		}
		if _, dup := seen[v.VIN]; dup {
			logx.Error().Str("vin", v.VIN).Str("path", s.csvPath).Msg("duplicate vin in inventory")
			return false
		}
		seen[v.VIN] = struct{}{}
		catalog = append(catalog, v)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.bodyCol = bodyCol
	s.mu.Unlock()

	logx.Info().Int("vehicles", len(catalog)).Str("path", s.csvPath).Msg("inventory loaded")
	return true
}

func parseRow(row []string, cols map[string]int, bodyCol string) (Vehicle, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	vin := get("vin")
	if vin == "" {
		return Vehicle{}, fmt.Errorf("empty vin")
	}

	year, err := strconv.Atoi(get("year"))
	if err != nil {
		return Vehicle{}, fmt.Errorf("year: %w", err)
	}
	price, err := strconv.ParseFloat(get("price"), 64)
	if err != nil {
		return Vehicle{}, fmt.Errorf("price: %w", err)
	}
	if price < 0 {
		return Vehicle{}, fmt.Errorf("negative price %v", price)
	}

	mileage := 0
	if raw := get("mileage"); raw != "" {
		mileage, err = strconv.Atoi(raw)
		if err != nil {
			return Vehicle{}, fmt.Errorf("mileage: %w", err)
		}
		if mileage < 0 {
			return Vehicle{}, fmt.Errorf("negative mileage %d", mileage)
		}
	}

	status := Status(get("status"))
	if status == "" {
		status = StatusAvailable
	}

	return Vehicle{
		VIN:          vin,
		Make:         get("make"),
		Model:        get("model"),
		Year:         year,
		Price:        price,
		Mileage:      mileage,
		Color:        get("color"),
		BodyStyle:    get(bodyCol),
		FuelType:     get("fuel_type"),
		Transmission: get("transmission"),
		Status:       status,
		SafetyRating: get("safety_rating"),
		Features:     get("features"),
	}, nil
}

// Search runs the full query pipeline (extract criteria, filter, score,
// rank) behind the fingerprint cache. Any internal fault degrades to an
// empty result so the chat layer always gets a well-formed answer.
func (s *Store) Search(query string, maxResults int) (results []Vehicle) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("query", query).Msgf("search panic recovered: %v", r)
			results = nil
		}
	}()

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	s.mu.RLock()
	catalogSize := len(s.catalog)
	s.mu.RUnlock()
	if catalogSize == 0 {
		return nil
	}

	results, err := s.cache.GetOrCompute(query, maxResults, catalogSize, func() ([]Vehicle, error) {
		criteria := ExtractCriteria(query)
		logx.Debug().
			Str("query", query).
			Int("budget_max", criteria.BudgetMax).
			Str("body_style", criteria.BodyStyle).
			Str("color", criteria.Color).
			Msg("search criteria extracted")

		s.mu.RLock()
		defer s.mu.RUnlock()
		candidates := Filter(s.catalog, criteria)
		return Rank(candidates, criteria, s.now().Year(), maxResults), nil
	})
	if err != nil {
		logx.Error().Err(err).Str("query", query).Msg("search failed")
		return nil
	}
	return results
}

// FindByVIN returns the catalog record for the identifier, if present.
func (s *Store) FindByVIN(vin string) (Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.catalog {
		if v.VIN == vin {
			return v, true
		}
	}
	return Vehicle{}, false
}

// Len returns the current catalog row count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.catalog)
}

// Reserve flips an Available vehicle to Reserved and synchronously persists
// the whole table before reporting success. It returns false when the VIN is
// unknown, the vehicle is no longer available, or the write-through fails
// (in which case the in-memory status is rolled back).
func (s *Store) Reserve(vin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.catalog {
		if s.catalog[i].VIN == vin {
			idx = i
			break
		}
	}
	if idx < 0 {
		logx.Warn().Str("vin", vin).Msg("reserve rejected: vin not found")
		return false
	}
	if s.catalog[idx].Status != StatusAvailable {
		logx.Warn().Str("vin", vin).Str("status", string(s.catalog[idx].Status)).Msg("reserve rejected: vehicle not available")
		return false
	}

	s.catalog[idx].Status = StatusReserved
	if err := s.persistLocked(); err != nil {
		s.catalog[idx].Status = StatusAvailable
		logx.Error().Err(err).Str("vin", vin).Msg("reserve rolled back: persist failed")
		return false
	}

	logx.Info().Str("vin", vin).Msg("vehicle reserved")
	return true
}

// persistLocked rewrites the backing table atomically (temp file + rename).
// Caller holds s.mu.
func (s *Store) persistLocked() error {
	dir := filepath.Dir(s.csvPath)
	tmp, err := os.CreateTemp(dir, "inventory-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	header := []string{
		"vin", "make", "model", "year", "price", "mileage", "color",
		s.bodyCol, "fuel_type", "transmission", "status", "safety_rating", "features",
	}
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, v := range s.catalog {
		row := []string{
			v.VIN, v.Make, v.Model,
			strconv.Itoa(v.Year),
			strconv.FormatFloat(v.Price, 'f', -1, 64),
			strconv.Itoa(v.Mileage),
			v.Color, v.BodyStyle, v.FuelType, v.Transmission,
			string(v.Status), v.SafetyRating, v.Features,
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.csvPath)
}

// CacheStats exposes the cumulative search cache counters.
func (s *Store) CacheStats() CacheStats {
	return s.cache.Stats()
}

// ClearCache empties the search cache and resets its counters.
func (s *Store) ClearCache() {
	s.cache.Clear()
	logx.Info().Msg("search cache cleared")
}

// snapshot returns a copy of the catalog for read-only aggregate work.
func (s *Store) snapshot() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vehicle, len(s.catalog))
	copy(out, s.catalog)
	return out
}
