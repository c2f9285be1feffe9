package dashboard

import (
	"time"

	"github.com/solflow/dcadash/internal/dashboard/themes"
	"github.com/solflow/dcadash/internal/source"
)

// Config holds the dashboard's dependencies and tuning knobs.
type Config struct {
	Source       source.Source
	Now          func() time.Time
	Theme        themes.Theme
	ChartMint    string
	PageSize     int
	ChartBuckets int
	Debounce     time.Duration
	RefreshEvery time.Duration
	ChartSpan    time.Duration
	FetchTimeout time.Duration
}

// withDefaults fills in zero-valued knobs.
func (c Config) withDefaults() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ChartMint == "" {
		c.ChartMint = "USDC"
	}
	if c.PageSize <= 0 {
		c.PageSize = 15
	}
	if c.ChartBuckets <= 0 {
		c.ChartBuckets = 12
	}
	if c.Debounce <= 0 {
		c.Debounce = 300 * time.Millisecond
	}
	if c.RefreshEvery <= 0 {
		c.RefreshEvery = 30 * time.Second
	}
	if c.ChartSpan <= 0 {
		c.ChartSpan = 24 * time.Hour
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	return c
}
