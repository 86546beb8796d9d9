package metrics

import "sort"

// Sample holds the three scalars extracted from one stats report.
type Sample struct {
	Delivery float64 `json:"delivery" yaml:"delivery"`
	Overhead float64 `json:"overhead" yaml:"overhead"`
	Latency  float64 `json:"latency" yaml:"latency"`
}

// Series maps a node count to the sample measured at that scale. Node
// counts need not be contiguous.
type Series map[int]Sample

// NodeCounts returns the node counts present in the series in ascending
// order. Plotting always iterates in this order.
func (s Series) NodeCounts() []int {
	counts := make([]int, 0, len(s))
	for n := range s {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts
}

// Catalog maps protocol names (case-sensitive, as extracted from report
// filenames) to their series. It is built once by the report scanner and
// read-only afterwards.
type Catalog map[string]Series

// Insert stores a sample at [protocol][nodes], overwriting any prior entry
// for that exact key.
func (c Catalog) Insert(protocol string, nodes int, sample Sample) {
	series, ok := c[protocol]
	if !ok {
		series = Series{}
		c[protocol] = series
	}
	series[nodes] = sample
}

// Protocols returns all protocol names in lexicographic order.
func (c Catalog) Protocols() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
