package duo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{}, All([]Option[int]{}).Unwrap(), "empty input is presence of empty")
	assert.Equal([]int{1, 2}, All([]Option[int]{Some(1), Some(2)}).Unwrap())
	assert.True(All([]Option[int]{Some(1), None[int](), Some(2)}).IsNone())
}

func TestAny(t *testing.T) {
	assert := assert.New(t)

	assert.True(Any([]Option[int]{}).IsNone())
	assert.True(Any([]Option[int]{None[int](), None[int]()}).IsNone())
	assert.Equal(5, Any([]Option[int]{None[int](), Some(5), Some(6)}).Unwrap(), "first present element wins")
}

func TestZip(t *testing.T) {
	assert := assert.New(t)

	pair := Zip(Some(1), Some("a"))
	assert.Equal(Pair[int, string]{First: 1, Second: "a"}, pair.Unwrap())

	assert.True(Zip(Some(1), None[string]()).IsNone())
	assert.True(Zip(None[int](), Some("a")).IsNone())
	assert.True(Zip(None[int](), None[string]()).IsNone())
}

func TestMapOption(t *testing.T) {
	assert := assert.New(t)

	out := MapOption(Some(21), func(v int) string {
		if v > 20 {
			return "big"
		}
		return "small"
	})
	assert.Equal("big", out.Unwrap())

	calls := 0
	none := MapOption(None[int](), func(v int) int { calls++; return v })
	assert.True(none.IsNone())
	assert.Zero(calls)
}

func TestFlatMapOption(t *testing.T) {
	assert := assert.New(t)

	halve := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}

	assert.Equal(2, FlatMapOption(Some(4), halve).Unwrap())
	assert.True(FlatMapOption(Some(3), halve).IsNone())
	assert.True(FlatMapOption(None[int](), halve).IsNone())
}

func TestMatchOption(t *testing.T) {
	assert := assert.New(t)

	identity := func(v int) int { return v }
	fallback := func() int { return -1 }

	assert.Equal(8, MatchOption(Some(8), identity, fallback))
	assert.Equal(-1, MatchOption(None[int](), identity, fallback))
}

func TestMapResultFreeForm(t *testing.T) {
	assert := assert.New(t)

	out := Map(Ok[int, error](5), func(v int) string {
		return string(rune('a' + v))
	})
	assert.Equal("f", out.Unwrap())

	calls := 0
	fail := Map(Err[int, error](errors.New("boom")), func(v int) int { calls++; return v })
	assert.True(fail.IsErr())
	assert.Zero(calls)
}

func TestMapErrWidens(t *testing.T) {
	assert := assert.New(t)

	type code struct{ n int }

	widened := MapErr(Err[int, string]("not found"), func(string) code { return code{n: 404} })
	assert.Equal(code{n: 404}, widened.UnwrapErr())

	kept := MapErr(Ok[int, string](1), func(string) code { return code{n: 500} })
	assert.Equal(1, kept.Unwrap())
}

func TestFlatMapResultFreeForm(t *testing.T) {
	assert := assert.New(t)

	parse := func(v int) Result[string, error] {
		if v < 0 {
			return Err[string, error](errors.New("negative"))
		}
		return Ok[string, error]("ok")
	}

	assert.Equal("ok", FlatMap(Ok[int, error](1), parse).Unwrap())
	assert.True(FlatMap(Ok[int, error](-1), parse).IsErr())

	calls := 0
	fail := FlatMap(Err[int, error](errors.New("boom")), func(v int) Result[string, error] {
		calls++
		return Ok[string, error]("never")
	})
	assert.True(fail.IsErr())
	assert.Zero(calls)
}

func TestMatchResultFreeForm(t *testing.T) {
	assert := assert.New(t)

	fold := func(r Result[int, string]) string {
		return Match(r,
			func(v int) string { return "ok" },
			func(e string) string { return e },
		)
	}

	assert.Equal("ok", fold(Ok[int, string](1)))
	assert.Equal("broken", fold(Err[int, string]("broken")))
}

func TestPartitionStable(t *testing.T) {
	assert := assert.New(t)

	values, failures := Partition([]Result[int, string]{
		Ok[int, string](1),
		Err[int, string]("a"),
		Ok[int, string](2),
		Err[int, string]("b"),
	})

	assert.Equal([]int{1, 2}, values, "success order preserved")
	assert.Equal([]string{"a", "b"}, failures, "failure order preserved")

	values, failures = Partition([]Result[int, string]{})
	assert.Empty(values)
	assert.Empty(failures)
}

func TestCollect(t *testing.T) {
	assert := assert.New(t)

	all := Collect([]Result[int, error]{Ok[int, error](1), Ok[int, error](2)})
	assert.Equal([]int{1, 2}, all.Unwrap())

	joined := Collect([]Result[int, error]{
		Ok[int, error](1),
		Err[int, error](errors.New("a")),
		Ok[int, error](2),
		Err[int, error](errors.New("b")),
	})
	assert.True(joined.IsErr())
	assert.Len(GetErrors(joined.UnwrapErr()), 2, "every failure is kept")
}
