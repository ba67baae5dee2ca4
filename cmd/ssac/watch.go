package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ssac/internal/config"
	"ssac/internal/watch"
)

// runWatch builds once, then rebuilds every unit under opts.Path after each
// burst of source changes until ctx is done
func runWatch(ctx context.Context, opts buildOptions, cfg *config.Config, stdout, stderr io.Writer) error {
	w, err := watch.New(cfg.Debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(opts.Path); err != nil {
		return err
	}

	build(ctx, opts, cfg, stdout, stderr)

	return w.Run(ctx, func(paths []string) {
		fmt.Fprintf(stderr, "changed: %s\n", strings.Join(paths, ", "))
		build(ctx, opts, cfg, stdout, stderr)
	})
}
