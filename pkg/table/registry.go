package table

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"pokerpot-server/internal/rng"
	"pokerpot-server/pkg/token"
)

// DefaultCodeLength is the number of characters in a room code
const DefaultCodeLength = 6

// maxCodeAttempts bounds how many collisions Create tolerates
const maxCodeAttempts = 100

// Registry keeps track of every open table by room code
// The registry only guards its own map. The tables it hands out are owned by
// whoever runs their game loop.
type Registry struct {
	tables     map[string]*Table
	lock       sync.RWMutex
	generator  rng.Generator
	codeLength int
}

// NewRegistry returns an empty registry
func NewRegistry(generator rng.Generator, codeLength int) *Registry {
	if codeLength <= 0 {
		codeLength = DefaultCodeLength
	}

	return &Registry{
		tables:     make(map[string]*Table),
		generator:  generator,
		codeLength: codeLength,
	}
}

// CodeLength returns the length of generated room codes
func (r *Registry) CodeLength() int {
	return r.codeLength
}

// Create validates the settings, opens a table under a new code and seats the host
func (r *Registry) Create(hostID, name, avatar string, settings Settings) (*Table, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	code, err := r.uniqueCode()
	if err != nil {
		return nil, err
	}

	t := New(code, settings)
	if _, _, err := t.Join(hostID, name, avatar); err != nil {
		return nil, err
	}

	r.tables[code] = t
	logrus.WithFields(logrus.Fields{
		"room": code,
		"host": hostID,
	}).Info("room created")

	return t, nil
}

// NOTE: the caller must hold the write lock
func (r *Registry) uniqueCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := token.Generate(r.generator, r.codeLength)
		if _, exists := r.tables[code]; !exists {
			return code, nil
		}
	}

	return "", ErrCodeExhausted
}

// Get returns the table for the code
func (r *Registry) Get(code string) (*Table, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	t, ok := r.tables[code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return t, nil
}

// Delete removes the table
// Returns false if the code was unknown
func (r *Registry) Delete(code string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.tables[code]; !ok {
		return false
	}

	delete(r.tables, code)
	logrus.WithField("room", code).Info("room deleted")
	return true
}

// Len returns the number of open tables
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.tables)
}

// Codes returns every open room code, sorted
func (r *Registry) Codes() []string {
	r.lock.RLock()
	codes := make([]string, 0, len(r.tables))
	for code := range r.tables {
		codes = append(codes, code)
	}
	r.lock.RUnlock()

	sort.Strings(codes)
	return codes
}
