// Package store implements the record store: named collections of JSON
// records, held in memory and written back to a single database table on
// every mutation. It is the localStorage of the original client app, with
// the same contract — the in-memory copy is authoritative for the session,
// and a failed write is logged, never surfaced.
package store

import (
	"encoding/json"
	"log"
	"reflect"
	"sync"

	"github.com/lifedesk/lifedesk-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection names, one persisted row each. They mirror the original
// client's storage keys.
const (
	CollectionProjects       = "projects"
	CollectionTasks          = "tasks"
	CollectionExpenses       = "expenses"
	CollectionHabits         = "habits"
	CollectionNotes          = "notes"
	CollectionCanvaFonts     = "canvaFonts"
	CollectionCanvaApps      = "canvaApps"
	CollectionCanvaIdeas     = "canvaIdeas"
	CollectionCanvaLinks     = "canvaLinks"
	CollectionTransactions   = "notFixedBudget"
	CollectionFixedBudgets   = "fixedBudgets"
	CollectionFixedExpenses  = "fixedExpenses"
	CollectionStories        = "stories"
	CollectionScenes         = "scenes"
	CollectionShayaris       = "shayaris"
	CollectionRekhtaShayaris = "rekhtaSavedShayaris"
)

// schemaVersion is stamped on every saved row. Rows carrying a different
// version are treated like unparsable payloads: the collection loads empty.
const schemaVersion = 1

// Store owns every named collection. One instance is created at startup
// and passed to each service; there is no package-level singleton.
//
// The mutex serializes whole operations, not just cache access: Update
// holds it across the full decode-mutate-encode sequence so concurrent
// read-modify-writes on a collection cannot drop each other's records.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	cache map[string]string
}

// New loads all persisted collections into memory. Rows with a foreign
// schema version are dropped from the cache so readers get the empty
// default.
func New(db *gorm.DB) (*Store, error) {
	var rows []models.Collection
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	cache := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Version != schemaVersion {
			log.Printf("store: dropping collection %q with schema version %d", row.Name, row.Version)
			continue
		}
		cache[row.Name] = row.Payload
	}

	return &Store{db: db, cache: cache}, nil
}

// Load decodes the named collection into out, which must be a pointer to
// a slice. A missing collection or an unparsable payload leaves out as the
// caller's zero value; neither is an error.
func (s *Store) Load(name string, out interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(name, out)
}

// Save replaces the named collection with records and persists it. The
// cache entry is updated unconditionally; a database write failure is
// logged and swallowed, leaving the in-memory copy authoritative for the
// rest of the session.
func (s *Store) Save(name string, records interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(name, records)
}

// Update atomically applies a read-modify-write to the named collection.
// It decodes the collection into records (a pointer to a slice), runs
// mutate, and persists the slice records points at if mutate returns true.
// The store lock is held for the whole sequence, so concurrent Updates on
// the same collection cannot lose each other's changes.
//
// mutate must not call back into the store; that would deadlock.
func (s *Store) Update(name string, records interface{}, mutate func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(name, records)
	if !mutate() {
		return
	}
	s.save(name, records)
}

func (s *Store) load(name string, out interface{}) {
	payload, ok := s.cache[name]
	if !ok {
		return
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		log.Printf("store: collection %q has unparsable payload, using empty default: %v", name, err)
		// Unmarshal may have partially filled the slice before failing.
		v := reflect.ValueOf(out).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
}

func (s *Store) save(name string, records interface{}) {
	payload, err := json.Marshal(records)
	if err != nil {
		log.Printf("store: failed to encode collection %q: %v", name, err)
		return
	}

	s.cache[name] = string(payload)

	row := models.Collection{
		Name:    name,
		Version: schemaVersion,
		Payload: string(payload),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		log.Printf("store: failed to persist collection %q: %v", name, err)
	}
}
