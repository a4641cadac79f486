// Package catalog caches the read-only reference data every dashboard
// screen needs: clients, cities, products and users. Lookups never
// fail; a missing id renders as the "unknown" fallback label.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/guiklos/lcpc-v2/internal/models"
)

// UnknownLabel is rendered when a referenced id is not in the snapshot.
const UnknownLabel = "unknown"

// Source lists the reference data from the upstream API.
type Source interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	ListCities(ctx context.Context) ([]models.City, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Snapshot holds the loaded reference sets behind a read lock so
// lookups stay cheap while a refresh is running.
type Snapshot struct {
	mu       sync.RWMutex
	clients  map[string]models.Client
	cities   map[string]models.City
	products map[string]models.Product
	users    map[string]models.User
}

// loadResult carries one list out of a refresh goroutine.
type loadResult struct {
	kind string
	err  error
}

// NewSnapshot returns an empty snapshot; call Refresh to populate it.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		clients:  make(map[string]models.Client),
		cities:   make(map[string]models.City),
		products: make(map[string]models.Product),
		users:    make(map[string]models.User),
	}
}

// Refresh fetches the four reference lists concurrently and swaps
// them in. If any fetch fails the snapshot keeps its previous data.
func (s *Snapshot) Refresh(ctx context.Context, src Source) error {
	var (
		clients  []models.Client
		cities   []models.City
		products []models.Product
		users    []models.User
	)

	resultChan := make(chan loadResult, 4)
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		clients, err = src.ListClients(ctx)
		resultChan <- loadResult{kind: "clients", err: err}
	}()
	go func() {
		defer wg.Done()
		var err error
		cities, err = src.ListCities(ctx)
		resultChan <- loadResult{kind: "cities", err: err}
	}()
	go func() {
		defer wg.Done()
		var err error
		products, err = src.ListProducts(ctx)
		resultChan <- loadResult{kind: "products", err: err}
	}()
	go func() {
		defer wg.Done()
		var err error
		users, err = src.ListUsers(ctx)
		resultChan <- loadResult{kind: "users", err: err}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		if result.err != nil {
			return fmt.Errorf("refresh %s: %w", result.kind, result.err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = make(map[string]models.Client, len(clients))
	for _, c := range clients {
		s.clients[c.ID] = c
	}
	s.cities = make(map[string]models.City, len(cities))
	for _, c := range cities {
		s.cities[c.ID] = c
	}
	s.products = make(map[string]models.Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
	}
	s.users = make(map[string]models.User, len(users))
	for _, u := range users {
		s.users[u.ID] = u
	}

	return nil
}

// ClientName resolves a client id to its display name.
func (s *Snapshot) ClientName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.clients[id]; ok {
		return c.Name
	}
	return UnknownLabel
}

// CityName resolves a city id to its display name. Client addresses
// carry a city reference rather than the name itself.
func (s *Snapshot) CityName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.cities[id]; ok {
		return c.Name
	}
	return UnknownLabel
}

// ProductName resolves a product id to its display name.
func (s *Snapshot) ProductName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.products[id]; ok {
		return p.Name
	}
	return UnknownLabel
}

// UserName resolves a user id to its display name.
func (s *Snapshot) UserName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return u.Username
	}
	return UnknownLabel
}

// ProductPrice returns the current catalog price for a product. The
// order editor uses this when a product is selected on a line.
func (s *Snapshot) ProductPrice(id string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return 0, false
	}
	return p.UnitValue, true
}

// Clients returns the cached clients sorted by name.
func (s *Snapshot) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Cities returns the cached cities sorted by name.
func (s *Snapshot) Cities() []models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.City, 0, len(s.cities))
	for _, c := range s.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Products returns the cached products sorted by name.
func (s *Snapshot) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Users returns the cached users sorted by username.
func (s *Snapshot) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// Stats returns counts of the loaded reference sets.
func (s *Snapshot) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"clients":  len(s.clients),
		"cities":   len(s.cities),
		"products": len(s.products),
		"users":    len(s.users),
	}
}
