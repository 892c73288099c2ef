package entropy

import (
	"strconv"
	"strings"
	"sync"
)

// resolvedTable is the product of buildTables for one frequency vector.
type resolvedTable struct {
	slotTable []uint32
	symbols   []Symbol
}

// TableCache memoizes resolved distribution tables keyed by their source
// frequency vector, guarded by a sync.RWMutex exactly as
// lvlath/core.Graph guards its adjacency maps — the read path (Get) takes
// the read lock, the write path (the miss branch) takes the write lock,
// so concurrent decoders sharing one schema's distribution never rebuild
// redundantly nor race.
type TableCache struct {
	mu    sync.RWMutex
	byKey map[string]resolvedTable
}

// NewTableCache returns an empty cache ready for concurrent use.
func NewTableCache() *TableCache {
	return &TableCache{byKey: make(map[string]resolvedTable)}
}

func key(freqCounts []uint64, precision uint) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(precision), 10))
	b.WriteByte('|')
	for _, f := range freqCounts {
		b.WriteString(strconv.FormatUint(f, 10))
		b.WriteByte(',')
	}
	return b.String()
}

// resolve returns the cached table for (freqCounts, precision), building
// and storing it on a cache miss.
func (c *TableCache) resolve(freqCounts []uint64, precision uint) ([]uint32, []Symbol, error) {
	k := key(freqCounts, precision)

	c.mu.RLock()
	if t, ok := c.byKey[k]; ok {
		c.mu.RUnlock()
		return t.slotTable, t.symbols, nil
	}
	c.mu.RUnlock()

	slotTable, symbols, err := buildTables(freqCounts, precision)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	c.byKey[k] = resolvedTable{slotTable: slotTable, symbols: symbols}
	c.mu.Unlock()

	return slotTable, symbols, nil
}

// defaultCache backs the package-level New*Coder constructors so callers
// that do not need an explicit cache (the common case: one-off encode or
// decode calls) still benefit from memoization across repeated calls with
// the same distribution.
var defaultCache = NewTableCache()
