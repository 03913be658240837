package state

import (
	"context"
	"sync"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"
)

type MovimientosSnapshot struct {
	Items    []model.MovimientoStock
	Cargando bool
	Error    string
}

// Movimientos caches the append-only stock ledger. Rows are written by the
// sale workflow and the manual adjustment service; the container only fetches
// and prepends.
type Movimientos struct {
	repo repository.MovimientoStockRepository

	mu       sync.Mutex
	items    []model.MovimientoStock
	cargando bool
	lastErr  string
}

func NewMovimientos(repo repository.MovimientoStockRepository) *Movimientos {
	return &Movimientos{repo: repo}
}

func (s *Movimientos) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.cargando = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := s.repo.List(ctx, repository.MovimientoFilter{})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cargando = false
	if err != nil {
		s.lastErr = "Error al cargar movimientos de stock"
		return err
	}
	s.items = items
	return nil
}

func (s *Movimientos) Prepend(movs ...model.MovimientoStock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(append([]model.MovimientoStock{}, movs...), s.items...)
}

func (s *Movimientos) Snapshot() MovimientosSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.MovimientoStock, len(s.items))
	copy(items, s.items)
	return MovimientosSnapshot{Items: items, Cargando: s.cargando, Error: s.lastErr}
}
