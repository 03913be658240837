package state

import (
	"context"
	"sync"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"

	"github.com/google/uuid"
)

type ClientesSnapshot struct {
	Items    []model.Cliente
	Cargando bool
	Error    string
}

type Clientes struct {
	repo repository.ClienteRepository

	mu       sync.Mutex
	items    []model.Cliente
	cargando bool
	lastErr  string
}

func NewClientes(repo repository.ClienteRepository) *Clientes {
	return &Clientes{repo: repo}
}

func (s *Clientes) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.cargando = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cargando = false
	if err != nil {
		s.lastErr = "Error al cargar clientes"
		return err
	}
	s.items = items
	return nil
}

func (s *Clientes) Add(ctx context.Context, c *model.Cliente) error {
	if err := s.repo.Create(ctx, c); err != nil {
		s.setErr("Error al agregar cliente")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *c)
	return nil
}

func (s *Clientes) Update(ctx context.Context, c *model.Cliente) error {
	if err := s.repo.Update(ctx, c); err != nil {
		s.setErr("Error al actualizar cliente")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = *c
			break
		}
	}
	return nil
}

func (s *Clientes) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.setErr("Error al eliminar cliente")
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

func (s *Clientes) Snapshot() ClientesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.Cliente, len(s.items))
	copy(items, s.items)
	return ClientesSnapshot{Items: items, Cargando: s.cargando, Error: s.lastErr}
}

func (s *Clientes) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
