package postgres

import (
	"context"
	"fmt"
	"time"
)

// SequenceVersionGenerator versión = prefijo + fecha UTC (AAAAMMDD) + secuencia de 6 dígitos.
// La secuencia area_freight_version_seq nunca repite, incluso entre procesos.
type SequenceVersionGenerator struct {
	q      Querier
	prefix string
	now    func() time.Time
}

// NewSequenceVersionGenerator construye el generador. Usa el pool, no la tx: nextval no se revierte.
func NewSequenceVersionGenerator(q Querier, prefix string) *SequenceVersionGenerator {
	return &SequenceVersionGenerator{q: q, prefix: prefix, now: time.Now}
}

// Next reserva el siguiente valor de la secuencia.
func (g *SequenceVersionGenerator) Next(ctx context.Context) (string, error) {
	var seq int64
	if err := g.q.QueryRow(ctx, `SELECT nextval('area_freight_version_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("next version sequence: %w", err)
	}
	return fmt.Sprintf("%s%s%06d", g.prefix, g.now().UTC().Format("20060102"), seq), nil
}
