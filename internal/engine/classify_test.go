package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/model"
)

// tagged returns a trace with the given raw status and an identifying timestamp.
func tagged(raw, id string) client.HTTPTrace {
	tr := traceWithStatus(raw)
	tr.Timestamp = id
	return tr
}

func ids(traces []client.HTTPTrace) []string {
	out := make([]string, len(traces))
	for i, tr := range traces {
		out[i] = tr.Timestamp
	}
	return out
}

func TestClassify_Empty(t *testing.T) {
	b := Classify(nil)
	assert.Equal(t, 0, b.Total())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, b.Counts())
}

func TestClassify_Correctness(t *testing.T) {
	cases := []struct {
		raw  string
		want model.Bucket
	}{
		{"200", model.Bucket200},
		{"404", model.Bucket404},
		{"400", model.Bucket400},
		{"500", model.Bucket500},
		{"201", model.BucketDefault},
		{"204", model.BucketDefault},
		{"301", model.BucketDefault},
		{"401", model.BucketDefault},
		{"503", model.BucketDefault},
		{"null", model.BucketDefault},
		{"", model.BucketDefault},
		{`"200"`, model.BucketDefault},
		{"200.5", model.BucketDefault},
		{"200.0", model.Bucket200},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status=%s", tc.raw), func(t *testing.T) {
			b := Classify([]client.HTTPTrace{tagged(tc.raw, "x")})
			require.Equal(t, 1, b.Total())
			assert.Equal(t, 1, b.Len(tc.want), "expected trace in bucket %s", tc.want.Label())
		})
	}
}

func TestClassify_OrderPreserved(t *testing.T) {
	in := []client.HTTPTrace{
		tagged("200", "a"),
		tagged("500", "b"),
		tagged("200", "c"),
		tagged("503", "d"),
		tagged("500", "e"),
		tagged("200", "f"),
		tagged("", "g"),
	}
	b := Classify(in)
	assert.Equal(t, []string{"a", "c", "f"}, ids(b.Traces(model.Bucket200)))
	assert.Equal(t, []string{"b", "e"}, ids(b.Traces(model.Bucket500)))
	assert.Equal(t, []string{"d", "g"}, ids(b.Traces(model.BucketDefault)))
	assert.Empty(t, b.Traces(model.Bucket404))
	assert.Empty(t, b.Traces(model.Bucket400))
}

func TestClassify_PartitionCompleteness(t *testing.T) {
	statuses := []string{"200", "404", "400", "500", "201", "302", "503", "null", "", `"oops"`}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		n := rng.Intn(150)
		in := make([]client.HTTPTrace, n)
		for i := range in {
			in[i] = tagged(statuses[rng.Intn(len(statuses))], fmt.Sprintf("t%03d", i))
		}

		b := Classify(in)
		require.Equal(t, n, b.Total(), "run %d: bucket total must equal input length", run)

		seen := make(map[string]int, n)
		for _, bucket := range model.AllBuckets {
			for _, tr := range b.Traces(bucket) {
				seen[tr.Timestamp]++
			}
		}
		require.Len(t, seen, n, "run %d: every trace must appear", run)
		for id, count := range seen {
			assert.Equal(t, 1, count, "run %d: trace %s in %d buckets", run, id, count)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	in := []client.HTTPTrace{
		tagged("200", "a"),
		tagged("404", "b"),
		tagged("null", "c"),
		tagged("400", "d"),
	}
	first := Classify(in)
	second := Classify(in)
	assert.Equal(t, first, second)
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	in := []client.HTTPTrace{tagged("500", "a"), tagged("200", "b")}
	_ = Classify(in)
	assert.Equal(t, []string{"a", "b"}, ids(in))
}
