// Package metrics defines the data model for DTN routing experiment results.
//
// A simulation run produces one report per (protocol, node count) pair. The
// three scalars extracted from each report form a [Sample]; samples for one
// protocol across node counts form a [Series]; all series together form the
// [Catalog] that the renderer consumes.
//
// # Metrics
//
// Six metrics can be charted: the three raw fields (delivery ratio, overhead
// ratio, average latency) and three composites derived per sample:
//
//	d_by_l  = delivery / latency
//	d_by_o  = delivery / overhead
//	d_by_lo = delivery / (latency * overhead)
//
// Derived values are computed on demand via [Metric.Value]; a zero divisor
// makes the point undefined and Value reports ok=false so callers can skip
// it instead of plotting an infinity.
//
// # Classification
//
// Protocol names containing the marker substring "EMRT" (case-insensitive)
// are variants; all others are bases. A variant is paired with the first
// base, in sorted order, whose name is contained in the variant name once
// the marker is stripped. Pairing only affects chart styling: a variant is
// drawn dotted in its base's color.
package metrics
