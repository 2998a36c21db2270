package driver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Watch reruns the plot pipeline whenever the file changes on disk,
// delivering each run to fn. It blocks until the context is cancelled or
// fn returns an error. Change detection polls the file's mtime; the first
// run happens immediately.
func Watch(ctx context.Context, filePath string, opts PlotOptions, poll time.Duration, fn func(*PlotResult) error) error {
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}

	changes := make(chan struct{}, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()
		defer close(changes)

		var lastMod time.Time
		if info, err := os.Stat(filePath); err == nil {
			lastMod = info.ModTime()
		}
		changes <- struct{}{}

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
			}
			info, err := os.Stat(filePath)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case _, ok := <-changes:
				if !ok {
					return nil
				}
			}
			result, err := Plot(filePath, opts)
			if err != nil {
				return err
			}
			if err := fn(result); err != nil {
				return err
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return nil
	}
	return err
}

// WatchReader re-evaluates an accumulating program: each line read from r is
// appended to the source and the whole program is recompiled and executed.
// The reader and evaluator run as an errgroup pair; WatchReader returns when
// r is exhausted, fn fails, or the context is cancelled.
func WatchReader(ctx context.Context, r io.Reader, opts PlotOptions, fn func(*PlotResult) error) error {
	lines := make(chan string)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return sc.Err()
	})

	g.Go(func() error {
		var src strings.Builder
		for line := range lines {
			src.WriteString(line)
			src.WriteByte('\n')
			result := PlotSource("<stdin>", []byte(src.String()), opts)
			if err := fn(result); err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return nil
	}
	return err
}
