package idgen

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeVersionGenerator versión = prefijo + id snowflake. No requiere BD;
// los ids son crecientes dentro de un nodo y únicos entre nodos distintos.
type SnowflakeVersionGenerator struct {
	node   *snowflake.Node
	prefix string
}

// NewSnowflakeVersionGenerator crea el nodo (0..1023).
func NewSnowflakeVersionGenerator(nodeID int64, prefix string) (*SnowflakeVersionGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeVersionGenerator{node: node, prefix: prefix}, nil
}

// Next genera una versión nueva.
func (g *SnowflakeVersionGenerator) Next(context.Context) (string, error) {
	return g.prefix + g.node.Generate().String(), nil
}
