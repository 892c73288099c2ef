package entropy

import "sort"

// Symbol holds the frequency and cumulative frequency of one symbol within
// a normalised rANS distribution.
type Symbol struct {
	FreqCount      uint32
	FreqCumulative uint32
}

// Default and bound precisions, per spec.md §4.B ("base precision 12;
// adaptive 12..=20 for raw-symbol mode").
const (
	DefaultPrecision = 12
	MinPrecision     = 12
	MaxPrecision     = 20
)

// LRansBase returns the default rANS normalisation base for a given
// precision: (1<<precision)<<2, per draco-oxide's RansCoder::new.
func LRansBase(precision uint) uint64 { return (uint64(1) << precision) << 2 }

// buildTables normalises freqCounts (which need not already sum to
// 1<<precision) into an exact distribution and derives the per-symbol
// table plus a slot table mapping each of the 1<<precision cumulative
// frequency slots to its owning symbol index. This realises spec.md
// §4.B's decoder-side normalisation algorithm, and is also used on the
// encode side since the same algorithm is idempotent on an already-exact
// distribution (ground truth: draco-oxide's shared rans_build_tables,
// inferred from its call sites in encode/decode/entropy/rans.rs).
func buildTables(freqCounts []uint64, precision uint) ([]uint32, []Symbol, error) {
	n := len(freqCounts)
	var total uint64
	for _, f := range freqCounts {
		total += f
	}
	if total == 0 {
		return nil, nil, ErrInvalidFreqCount
	}
	prec := uint64(1) << precision
	dist := make([]uint64, n)
	var totalProb uint64
	for i, f := range freqCounts {
		if f == 0 {
			continue
		}
		prob := float64(f) / float64(total)
		nf := uint64(prob*float64(prec) + 0.5)
		if nf == 0 {
			nf = 1
		}
		dist[i] = nf
		totalProb += nf
	}
	if totalProb != prec {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })
		if totalProb < prec {
			dist[order[n-1]] += prec - totalProb
		} else {
			deficit := totalProb - prec
			i := n - 1
			for deficit > 0 {
				dist[order[i]]--
				i--
				deficit--
			}
		}
	}
	symbols := make([]Symbol, n)
	slotTable := make([]uint32, prec)
	var cum uint64
	for i, f := range dist {
		if f > prec {
			return nil, nil, ErrInvalidFreqCount
		}
		symbols[i] = Symbol{FreqCount: uint32(f), FreqCumulative: uint32(cum)}
		for s := cum; s < cum+f; s++ {
			slotTable[s] = uint32(i)
		}
		cum += f
	}
	return slotTable, symbols, nil
}
