package duo_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/duo3/pkg/duo"
	"github.com/ib-77/duo3/pkg/duo/chain"
	"github.com/ib-77/duo3/pkg/duo/future"
	"github.com/ib-77/duo3/pkg/duo/pipe"
)

// TestParsePipeline drives raw inputs through the whole surface: fluent
// chains for per-item processing, curried steps for the formatting stage,
// and Partition for the final split.
func TestParsePipeline(t *testing.T) {
	ctx := context.Background()

	inputs := []string{"1", "2", "bad", "", "5"}

	results := make([]duo.Result[int, error], 0, len(inputs))
	for _, in := range inputs {
		parsed := chain.ThenTry(
			chain.FromValue(ctx, in).
				Then(func(ctx context.Context, s string) duo.Result[string, error] {
					if strings.TrimSpace(s) == "" {
						return duo.Err[string, error](fmt.Errorf("empty input"))
					}
					return duo.Ok[string, error](s)
				}),
			func(ctx context.Context, s string) (int, error) {
				return strconv.Atoi(s)
			},
		).Map(func(ctx context.Context, n int) int {
			return n * 2
		})
		results = append(results, parsed.Result())
	}

	values, failures := duo.Partition(results)
	assert.Equal(t, []int{2, 4, 10}, values)
	assert.Len(t, failures, 2)

	format := pipe.Match(
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(err error) string { return "err" },
	)
	labels := make([]string, 0, len(results))
	for _, r := range results {
		labels = append(labels, format(r))
	}
	assert.Equal(t, []string{"val:2", "val:4", "err", "err", "val:10"}, labels)
}

// TestDeferredAdaptation feeds futures through the classification entry
// points and checks the resolve/reject split survives the async boundary.
func TestDeferredAdaptation(t *testing.T) {
	ctx := context.Background()

	lookup := future.Go(ctx, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	opt := duo.OptionFrom(ctx, lookup)
	assert.Equal(t, 42, opt.Unwrap())

	broken := future.Go(ctx, func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("upstream down")
	})
	res := duo.ResultFrom(ctx, broken)
	reason, failed := res.GetErr()
	assert.True(t, failed)
	assert.EqualError(t, reason.(error), "upstream down")

	// the same rejection through Option discards the reason entirely
	assert.True(t, future.ToOption(ctx, future.Rejected[int](fmt.Errorf("gone"))).IsNone())
}

// TestCollectAfterFanOut mirrors a fan-out/fan-in flow: several deferred
// computations, gathered and folded into one result.
func TestCollectAfterFanOut(t *testing.T) {
	ctx := context.Background()

	futures := []*future.Future[int]{
		future.Go(ctx, func(ctx context.Context) (int, error) { return 1, nil }),
		future.Go(ctx, func(ctx context.Context) (int, error) { return 0, fmt.Errorf("a") }),
		future.Go(ctx, func(ctx context.Context) (int, error) { return 3, nil }),
		future.Go(ctx, func(ctx context.Context) (int, error) { return 0, fmt.Errorf("b") }),
	}

	results := make([]duo.Result[int, error], 0, len(futures))
	for _, f := range futures {
		results = append(results, future.ToResult(ctx, f))
	}

	folded := duo.Collect(results)
	assert.True(t, folded.IsErr())
	assert.Len(t, duo.GetErrors(folded.UnwrapErr()), 2)

	values, _ := duo.Partition(results)
	assert.ElementsMatch(t, []int{1, 3}, values)
}
