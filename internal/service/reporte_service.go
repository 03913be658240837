package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/dto"
	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReporteService aggregates sales per month bucket. Results are cached in
// redis when a client is configured; the sale workflow invalidates the bucket
// it writes into.
type ReporteService interface {
	VentasPorMes(ctx context.Context, mes string) (*dto.ReporteMensualResponse, error)
	InvalidarMes(ctx context.Context, mes string)
}

const reporteCacheTTL = 10 * time.Minute

type reporteService struct {
	repo repository.VentaRepository
	rdb  *redis.Client // nil = caching disabled
}

func NewReporteService(repo repository.VentaRepository, rdb *redis.Client) ReporteService {
	return &reporteService{repo: repo, rdb: rdb}
}

func cacheKey(mes string) string { return "reporte:mes:" + mes }

func (s *reporteService) VentasPorMes(ctx context.Context, mes string) (*dto.ReporteMensualResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey(mes)).Bytes(); err == nil {
			var cached dto.ReporteMensualResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	ventas, err := s.repo.ListByMes(ctx, mes)
	if err != nil {
		return nil, err
	}

	monto := decimal.Zero
	clientes := make(map[string]struct{})
	resps := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		monto = monto.Add(ventas[i].Total)
		clientes[ventas[i].ClienteID.String()] = struct{}{}
		resps = append(resps, *VentaToResponse(&ventas[i]))
	}

	reporte := &dto.ReporteMensualResponse{
		Mes:         mes,
		TotalVentas: len(ventas),
		MontoTotal:  monto,
		Clientes:    len(clientes),
		Ventas:      resps,
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(reporte); err == nil {
			if err := s.rdb.Set(ctx, cacheKey(mes), raw, reporteCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("mes", mes).Msg("cache reporte mensual")
			}
		}
	}
	return reporte, nil
}

// InvalidarMes drops the cached bucket after a sale commits into it.
// Best-effort: a failed delete only means a stale read until the TTL expires.
func (s *reporteService) InvalidarMes(ctx context.Context, mes string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey(mes)).Err(); err != nil {
		log.Warn().Err(err).Str("mes", mes).Msg("invalidate reporte mensual")
	}
}
