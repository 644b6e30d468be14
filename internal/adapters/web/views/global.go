package views

import (
	"context"

	"github.com/a-h/templ"
)

// Global lays out the leaderboards and scatter charts in the given order.
func Global(charts []Chart) templ.Component {
	return component(func(ctx context.Context, o *out) {
		o.raw(`<h1>Global Stats</h1><div class="charts">`)
		for _, c := range charts {
			chartBlock(ctx, o, c)
		}
		o.raw(`</div>`)
	})
}
