package mock

import "github.com/fwojciec/webcite"

var _ webcite.Collector = (*Collector)(nil)

// Collector is a mock implementation of webcite.Collector.
type Collector struct {
	CollectFn func(html string) (webcite.MetaBag, error)
}

func (c *Collector) Collect(html string) (webcite.MetaBag, error) {
	return c.CollectFn(html)
}
