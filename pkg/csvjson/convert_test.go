package csvjson_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textcanon/pkg/csvjson"
	"github.com/dmitrymomot/textcanon/pkg/logger"
	"github.com/dmitrymomot/textcanon/pkg/rowclean"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n, err := csvjson.Convert(context.Background(), strings.NewReader(products), &out,
		csvjson.WithReformatter(productReformatter(t)),
		csvjson.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"title":"oh hai. goodbye","price":"19.50","zip":"00902-1012"}`, lines[0])
}

func TestConvert_StopsOnError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	n, err := csvjson.Convert(ctx, strings.NewReader(products), &out,
		csvjson.WithLogger(logger.Discard()),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Empty(t, out.String())
}

func TestConvert_FailingCleanerLogsRow(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := logger.New(
		logger.WithOutput(&logs),
		logger.WithContextExtractors(csvjson.RowExtractor),
	)

	reg := rowclean.DefaultRegistry()
	price, err := reg.ParseChain("price_float")
	require.NoError(t, err)
	rf := rowclean.New(rowclean.WithField("price", price), rowclean.WithLogger(log))

	var out bytes.Buffer
	n, err := csvjson.Convert(context.Background(), strings.NewReader(products), &out,
		csvjson.WithReformatter(rf),
		csvjson.WithLogger(log),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"price":19.5`)
	assert.Contains(t, lines[1], `"price":"19.5.34"`, "failed cleaner keeps prior value")

	assert.Contains(t, logs.String(), `"row":2`)
	assert.Contains(t, logs.String(), `"field":"price"`)
}

func TestRowNumber(t *testing.T) {
	t.Parallel()

	_, ok := csvjson.RowNumber(context.Background())
	assert.False(t, ok)

	ctx := csvjson.WithRowNumber(context.Background(), 7)
	n, ok := csvjson.RowNumber(ctx)
	require.True(t, ok)
	assert.Equal(t, 7, n)

	attr, ok := csvjson.RowExtractor(ctx)
	require.True(t, ok)
	assert.Equal(t, logger.Row(7), attr)

}
