// Package seed loads the fixed demo catalog used for first-run walkthroughs.
package seed

import (
	"context"
	"fmt"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func ptr(s string) *string { return &s }

var sampleProductos = []model.Producto{
	{
		Nombre:      "Laptop HP Pavilion",
		Descripcion: ptr("Laptop de 15 pulgadas con procesador Intel i5"),
		Precio:      decimal.NewFromFloat(899.99),
		Stock:       10,
		StockMinimo: 3,
		Categoria:   "Electrónicos",
	},
	{
		Nombre:      "Mouse Inalámbrico",
		Descripcion: ptr("Mouse óptico inalámbrico con batería recargable"),
		Precio:      decimal.NewFromFloat(25.50),
		Stock:       50,
		StockMinimo: 10,
		Categoria:   "Accesorios",
	},
	{
		Nombre:      "Teclado Mecánico",
		Descripcion: ptr("Teclado mecánico con switches Cherry MX Blue"),
		Precio:      decimal.NewFromFloat(89.99),
		Stock:       15,
		StockMinimo: 5,
		Categoria:   "Accesorios",
	},
	{
		Nombre:      "Monitor 24\"",
		Descripcion: ptr("Monitor LED de 24 pulgadas Full HD"),
		Precio:      decimal.NewFromFloat(199.99),
		Stock:       8,
		StockMinimo: 2,
		Categoria:   "Electrónicos",
	},
	{
		Nombre:      "Cable HDMI",
		Descripcion: ptr("Cable HDMI de alta velocidad 2 metros"),
		Precio:      decimal.NewFromFloat(12.99),
		Stock:       100,
		StockMinimo: 20,
		Categoria:   "Cables",
	},
}

var sampleClientes = []model.Cliente{
	{
		Nombre:    "Juan Pérez",
		CUIL:      "20-12345678-9",
		Telefono:  ptr("011-1234-5678"),
		Email:     ptr("juan.perez@email.com"),
		Direccion: ptr("Av. Corrientes 1234, CABA"),
	},
	{
		Nombre:    "María González",
		CUIL:      "27-87654321-0",
		Telefono:  ptr("011-8765-4321"),
		Email:     ptr("maria.gonzalez@email.com"),
		Direccion: ptr("Belgrano 567, CABA"),
	},
	{
		Nombre:    "Carlos Rodríguez",
		CUIL:      "30-11223344-5",
		Telefono:  ptr("011-1122-3344"),
		Email:     ptr("carlos.rodriguez@email.com"),
		Direccion: ptr("Palermo 890, CABA"),
	},
	{
		Nombre:    "Ana López",
		CUIL:      "23-55667788-9",
		Telefono:  ptr("011-5566-7788"),
		Email:     ptr("ana.lopez@email.com"),
		Direccion: ptr("Recoleta 234, CABA"),
	},
	{
		Nombre:    "Roberto Silva",
		CUIL:      "25-99887766-5",
		Telefono:  ptr("011-9988-7766"),
		Email:     ptr("roberto.silva@email.com"),
		Direccion: ptr("San Telmo 456, CABA"),
	},
}

// Load inserts the sample catalog through the repositories. Reseeding is
// idempotent: customers are skipped by CUIL, products by name.
func Load(ctx context.Context, productos repository.ProductoRepository, clientes repository.ClienteRepository) error {
	existing, err := productos.List(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	nombres := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		nombres[p.Nombre] = struct{}{}
	}

	for _, p := range sampleProductos {
		if _, ok := nombres[p.Nombre]; ok {
			continue
		}
		p := p
		if err := productos.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Nombre, err)
		}
		log.Info().Str("producto", p.Nombre).Msg("seeded")
	}

	for _, c := range sampleClientes {
		if _, err := clientes.FindByCUIL(ctx, c.CUIL); err == nil {
			continue
		}
		c := c
		if err := clientes.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed customer %q: %w", c.Nombre, err)
		}
		log.Info().Str("cliente", c.Nombre).Msg("seeded")
	}
	return nil
}
