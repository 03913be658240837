// Package state holds one container per entity family: the last-fetched
// collection, a loading flag, and the last user-facing error message. The
// presentation layer reads snapshots; every mutation goes through the
// repository and reconciles the in-memory collection on success. Updates are
// last-write-wins — there is no optimistic concurrency.
package state

import (
	"context"
	"sync"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"

	"github.com/google/uuid"
)

// ProductosSnapshot is a point-in-time copy for the presentation layer.
type ProductosSnapshot struct {
	Items    []model.Producto
	Cargando bool
	Error    string
}

type Productos struct {
	repo repository.ProductoRepository

	mu       sync.Mutex
	items    []model.Producto
	cargando bool
	lastErr  string
}

func NewProductos(repo repository.ProductoRepository) *Productos {
	return &Productos{repo: repo}
}

// Fetch replaces the collection with the repository's current listing.
// The loading flag is visible to concurrent snapshots and always cleared.
func (s *Productos) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.cargando = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cargando = false
	if err != nil {
		s.lastErr = "Error al cargar productos"
		return err
	}
	s.items = items
	return nil
}

// Add persists the draft (repository assigns id and timestamps) and appends it
// to the collection on success.
func (s *Productos) Add(ctx context.Context, p *model.Producto) error {
	if err := s.repo.Create(ctx, p); err != nil {
		s.setErr("Error al agregar producto")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *p)
	return nil
}

// Update persists the entity (repository stamps updated_at) and replaces the
// matching element, matched by id.
func (s *Productos) Update(ctx context.Context, p *model.Producto) error {
	if err := s.repo.Update(ctx, p); err != nil {
		s.setErr("Error al actualizar producto")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			break
		}
	}
	return nil
}

// Delete removes the row and filters the element out of the collection.
func (s *Productos) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.setErr("Error al eliminar producto")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

func (s *Productos) Snapshot() ProductosSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.Producto, len(s.items))
	copy(items, s.items)
	return ProductosSnapshot{Items: items, Cargando: s.cargando, Error: s.lastErr}
}

func (s *Productos) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
