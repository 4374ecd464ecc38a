package model

import "github.com/dm/actdash/internal/client"

// Bucket identifies one outcome class of the trace window.
type Bucket int

const (
	Bucket200 Bucket = iota
	Bucket404
	Bucket400
	Bucket500
	BucketDefault

	numBuckets = int(BucketDefault) + 1
)

// AllBuckets lists every bucket in display order.
var AllBuckets = []Bucket{Bucket200, Bucket404, Bucket400, Bucket500, BucketDefault}

// ChartBuckets are the buckets drawn by the bar and share charts. Traces in
// the default bucket are listed in the table but not charted.
var ChartBuckets = []Bucket{Bucket200, Bucket404, Bucket400, Bucket500}

// Label returns the chart label for b.
func (b Bucket) Label() string {
	switch b {
	case Bucket200:
		return "200"
	case Bucket404:
		return "404"
	case Bucket400:
		return "400"
	case Bucket500:
		return "500"
	default:
		return "other"
	}
}

// Buckets is a partition of a trace window into the five outcome classes.
// Each bucket keeps traces in their input order.
type Buckets struct {
	sets [numBuckets][]client.HTTPTrace
}

// Add appends tr to bucket b.
func (bs *Buckets) Add(b Bucket, tr client.HTTPTrace) {
	bs.sets[b] = append(bs.sets[b], tr)
}

// Traces returns the traces in bucket b.
func (bs *Buckets) Traces(b Bucket) []client.HTTPTrace {
	return bs.sets[b]
}

// Len returns the number of traces in bucket b.
func (bs *Buckets) Len(b Bucket) int {
	return len(bs.sets[b])
}

// Total returns the number of traces across all buckets.
func (bs *Buckets) Total() int {
	n := 0
	for _, s := range bs.sets {
		n += len(s)
	}
	return n
}

// Counts returns per-bucket counts in AllBuckets order.
func (bs *Buckets) Counts() []int {
	out := make([]int, 0, numBuckets)
	for _, b := range AllBuckets {
		out = append(out, len(bs.sets[b]))
	}
	return out
}

// ChartCounts returns counts for ChartBuckets in chart label order.
func (bs *Buckets) ChartCounts() []int {
	out := make([]int, 0, len(ChartBuckets))
	for _, b := range ChartBuckets {
		out = append(out, len(bs.sets[b]))
	}
	return out
}

// Clear empties every bucket.
func (bs *Buckets) Clear() {
	*bs = Buckets{}
}
