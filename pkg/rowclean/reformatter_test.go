package rowclean_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/logger"
	"github.com/dmitrymomot/textcanon/pkg/rowclean"
	"github.com/dmitrymomot/textcanon/pkg/sanitizer"
)

var trim = rowclean.Lift(sanitizer.TextOnly(strings.TrimSpace))

func productRow() *rowclean.Row {
	return rowclean.NewRow(
		[]string{"title", "price", "zip"},
		[]field.Value{
			field.Text("  <p>oh hai.</p><p>goodbye</p>  "),
			field.Text(" 19.5 "),
			field.Text("9021012"),
		},
	)
}

func TestReformat_NoCleaners(t *testing.T) {
	t.Parallel()

	rf := rowclean.New(rowclean.WithLogger(logger.Discard()))
	assert.False(t, rf.HasCleaners())

	row := productRow()
	out, results := rf.Reformat(context.Background(), row)
	assert.Equal(t, row.Names(), out.Names())
	for _, res := range results {
		assert.True(t, res.OK())
		assert.False(t, res.Applied)
		assert.Equal(t, res.Prior, res.Value)
	}
}

func TestReformat_GlobalThenField(t *testing.T) {
	t.Parallel()

	reg := rowclean.DefaultRegistry()
	price, err := reg.ParseChain("price")
	require.NoError(t, err)
	zip, err := reg.ParseChain("zipcode")
	require.NoError(t, err)
	title, err := reg.ParseChain("compact")
	require.NoError(t, err)

	rf := rowclean.New(
		rowclean.WithGlobal(trim),
		rowclean.WithFieldCleaners(map[string]rowclean.Cleaner{"price": price, "zip": zip}),
		rowclean.WithField("title", title),
		rowclean.WithLogger(logger.Discard()),
	)
	require.True(t, rf.HasCleaners())

	row := productRow()
	out, results := rf.Reformat(context.Background(), row)

	get := func(name string) string {
		v, ok := out.Get(name)
		require.True(t, ok)
		return v.String()
	}
	assert.Equal(t, "oh hai. goodbye", get("title"))
	assert.Equal(t, "19.50", get("price"))
	assert.Equal(t, "00902-1012", get("zip"))

	require.Len(t, results, 3)
	for _, res := range results {
		assert.True(t, res.OK(), res.Field)
		assert.True(t, res.Applied, res.Field)
	}

	original, _ := row.Get("price")
	assert.Equal(t, " 19.5 ", original.String(), "input row must not be modified")
}

func TestReformat_FailureKeepsGloballyCleanedValue(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad value")
	buf := &bytes.Buffer{}
	rf := rowclean.New(
		rowclean.WithGlobal(trim),
		rowclean.WithField("price", func(field.Value) (field.Value, error) {
			return field.Null(), errBad
		}),
		rowclean.WithLogger(logger.New(logger.WithOutput(buf))),
	)

	out, results := rf.Reformat(context.Background(), productRow())

	v, _ := out.Get("price")
	assert.Equal(t, "19.5", v.String())

	res := results[1]
	assert.Equal(t, "price", res.Field)
	assert.False(t, res.OK())
	require.ErrorIs(t, res.Err, errBad)
	require.ErrorIs(t, res.Err, rowclean.ErrCleanerFailed)
	assert.Equal(t, field.Text("19.5"), res.Prior)
	assert.Equal(t, res.Prior, res.Value)

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"field":"price"`)
	assert.Contains(t, buf.String(), `"component":"rowclean"`)

	title, _ := out.Get("title")
	assert.Equal(t, "<p>oh hai.</p><p>goodbye</p>", title.String(), "other fields still cleaned")
}

func TestReformat_PanicIsRecovered(t *testing.T) {
	t.Parallel()

	rf := rowclean.New(
		rowclean.WithField("zip", func(field.Value) (field.Value, error) {
			panic("kaboom")
		}),
		rowclean.WithLogger(logger.Discard()),
	)

	out, results := rf.Reformat(context.Background(), productRow())
	v, _ := out.Get("zip")
	assert.Equal(t, "9021012", v.String())
	require.ErrorIs(t, results[2].Err, rowclean.ErrCleanerPanic)
	assert.Contains(t, results[2].Err.Error(), "kaboom")
}

func TestReformat_GlobalFailureStillRunsFieldCleaner(t *testing.T) {
	t.Parallel()

	rf := rowclean.New(
		rowclean.WithGlobal(func(v field.Value) (field.Value, error) {
			return v, errors.New("global down")
		}),
		rowclean.WithField("price", trim),
		rowclean.WithLogger(logger.Discard()),
	)

	out, results := rf.Reformat(context.Background(), productRow())
	v, _ := out.Get("price")
	assert.Equal(t, "19.5", v.String())
	for _, res := range results {
		assert.False(t, res.OK(), res.Field)
	}
}

func TestReformat_NilRow(t *testing.T) {
	t.Parallel()

	out, results := rowclean.New().Reformat(context.Background(), nil)
	require.NotNil(t, out)
	assert.Equal(t, 0, out.Len())
	assert.Empty(t, results)
}
