package ir

import (
	"fmt"
	"sync"
)

// EntUndefError is the error returned if accessing a non-existent entity.
type EntUndefError struct {
	uniqID int
}

func (e EntUndefError) Error() string {
	return fmt.Sprintf("IR entity undefined (id: %d)", e.uniqID)
}

// Pool is a registry of IR entities (values, blocks) with centrally
// generated unique IDs.
//
// A pool ID has no particular significance, except that it is unique within
// the Pool. IDs are what value names and block labels are printed from, and
// what integer-indexed visited sets are keyed by.
type Pool struct {
	pool  map[int]interface{}
	count int

	mu sync.Mutex
}

func newPool() *Pool {
	return &Pool{pool: make(map[int]interface{})}
}

// add registers e in the pool and returns its new unique ID.
func (p *Pool) add(e interface{}) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.count + 1
	p.pool[id] = e
	p.count++
	return id
}

// Get obtains the entity registered under id.
func (p *Pool) Get(id int) (interface{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.pool[id]; ok {
		return e, nil
	}
	return nil, EntUndefError{uniqID: id}
}

// ids is the pool all IDs in the package are drawn from.
var ids = newPool()

// LookupID finds the value or block registered under a pool ID.
// Primarily for debugging.
func LookupID(id int) (interface{}, error) {
	return ids.Get(id)
}
