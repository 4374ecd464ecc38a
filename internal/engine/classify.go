package engine

import (
	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/model"
)

// Classify partitions traces into outcome buckets by exact status code:
// 200, 404, 400 and 500 get their own bucket, every other code (and a missing
// or non-integer status) goes to BucketDefault. Input order is preserved
// within each bucket. traces is not modified.
func Classify(traces []client.HTTPTrace) model.Buckets {
	var b model.Buckets
	for _, tr := range traces {
		b.Add(BucketFor(tr), tr)
	}
	return b
}

// BucketFor returns the outcome bucket a single trace belongs to.
func BucketFor(tr client.HTTPTrace) model.Bucket {
	code, ok := tr.Status()
	if !ok {
		return model.BucketDefault
	}
	switch code {
	case 200:
		return model.Bucket200
	case 404:
		return model.Bucket404
	case 400:
		return model.Bucket400
	case 500:
		return model.Bucket500
	default:
		return model.BucketDefault
	}
}
