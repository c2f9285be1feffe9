package query

import (
	"time"

	"github.com/solflow/dcadash/internal/model"
)

// BucketSeries is a fixed-size partition of a time range: one label per
// bucket (oldest first) and a parallel slice of summed amounts. Both slices
// always have exactly the configured bucket count, however sparse the data.
type BucketSeries struct {
	Labels []string
	Values []float64
}

// Total returns the sum over all bucket values.
func (s BucketSeries) Total() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Aggregate sums order amounts into buckets of equal width starting at
// start. An order lands in bucket i when its ExecuteAt falls within
// [start+i*width, start+(i+1)*width); the very last instant of the full
// range is counted in the final bucket so edge executions are not dropped.
// Orders failing keep are ignored. keep may be nil to accept everything.
func Aggregate(orders []model.Order, start time.Time, width time.Duration, buckets int, keep func(model.Order) bool) BucketSeries {
	series := BucketSeries{
		Labels: make([]string, buckets),
		Values: make([]float64, buckets),
	}
	if buckets <= 0 || width <= 0 {
		return BucketSeries{}
	}

	for i := range series.Labels {
		series.Labels[i] = bucketLabel(start.Add(time.Duration(i)*width), width)
	}

	span := time.Duration(buckets) * width
	for _, o := range orders {
		if keep != nil && !keep(o) {
			continue
		}
		offset := o.ExecuteAt.Sub(start)
		if offset < 0 || offset > span {
			continue
		}
		idx := int(offset / width)
		if idx == buckets {
			// Range-end instant belongs to the last bucket.
			idx = buckets - 1
		}
		series.Values[idx] += o.Amount
	}

	return series
}

// bucketLabel formats a bucket start for display: time of day for sub-day
// buckets, calendar date otherwise.
func bucketLabel(t time.Time, width time.Duration) string {
	if width < 24*time.Hour {
		return t.Format("15:04")
	}
	return t.Format("Jan 02")
}
