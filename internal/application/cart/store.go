// Package cart mantiene los carritos por sesión de compra. Los carritos viven
// solo en memoria del proceso: igual que la sesión de navegador de la tienda
// original, se pierden al reiniciar y no se persisten.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	domaincart "github.com/jhoicas/boutique-api/internal/domain/cart"
)

// defaultTTL tiempo de vida de un carrito sin actividad.
const defaultTTL = 24 * time.Hour

type entry struct {
	cart     *domaincart.Cart
	lastSeen time.Time
}

// Store mapa de carritos por session ID, seguro para uso concurrente.
// Cada sesión muta solo su propio carrito; el mutex protege el mapa y la
// mutación del carrito de la sesión.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time // inyectable para tests
}

// NewStore crea el almacén de carritos.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     defaultTTL,
		now:     time.Now,
	}
}

// NewSession genera un session ID nuevo con carrito vacío.
func (s *Store) NewSession() string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry{cart: domaincart.New(), lastSeen: s.now()}
	return id
}

// With ejecuta fn sobre el carrito de la sesión, creándolo si no existe
// (el session ID puede venir de un proceso anterior). Refresca la actividad
// y aprovecha para expirar carritos viejos.
func (s *Store) With(sessionID string, fn func(c *domaincart.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok {
		e = &entry{cart: domaincart.New()}
		s.entries[sessionID] = e
	}
	e.lastSeen = s.now()
	fn(e.cart)
	s.evictStale()
}

// Drop elimina el carrito de la sesión (checkout completado o logout).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// evictStale elimina carritos sin actividad por más del TTL. Llamar con el
// lock tomado.
func (s *Store) evictStale() {
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
