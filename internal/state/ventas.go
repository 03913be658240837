package state

import (
	"context"
	"sync"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
)

type VentasSnapshot struct {
	Items    []model.Venta
	Cargando bool
	Error    string
}

// Ventas caches committed sales. Sales are immutable, so the container has no
// Update or Delete: new rows arrive only through the sale workflow, which
// prepends them via Prepend.
type Ventas struct {
	repo repository.VentaRepository

	mu       sync.Mutex
	items    []model.Venta
	cargando bool
	lastErr  string
}

func NewVentas(repo repository.VentaRepository) *Ventas {
	return &Ventas{repo: repo}
}

func (s *Ventas) Fetch(ctx context.Context) error {
	return s.fetch(ctx, "")
}

// FetchMes replaces the collection with a single month's sales.
func (s *Ventas) FetchMes(ctx context.Context, mes string) error {
	return s.fetch(ctx, mes)
}

func (s *Ventas) fetch(ctx context.Context, mes string) error {
	s.mu.Lock()
	s.cargando = true
	s.lastErr = ""
	s.mu.Unlock()

	var (
		items []model.Venta
		err   error
	)
	if mes == "" {
		items, err = s.repo.List(ctx)
	} else {
		items, err = s.repo.ListByMes(ctx, mes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cargando = false
	if err != nil {
		s.lastErr = "Error al cargar ventas"
		return err
	}
	s.items = items
	return nil
}

// Prepend inserts a freshly committed sale at the head of the collection,
// matching the newest-first ordering of Fetch.
func (s *Ventas) Prepend(v model.Venta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Venta{v}, s.items...)
}

func (s *Ventas) Snapshot() VentasSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.Venta, len(s.items))
	copy(items, s.items)
	return VentasSnapshot{Items: items, Cargando: s.cargando, Error: s.lastErr}
}
