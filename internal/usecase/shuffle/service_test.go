package shuffle_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"anagram-shuffle/internal/domain/anagram"
	"anagram-shuffle/internal/usecase/shuffle"
)

func TestService_Count(t *testing.T) {
	svc := &shuffle.Service{}

	got, err := svc.Count(context.Background(), "aab")
	require.NoError(t, err)
	assert.Equal(t, "3", got.String())

	_, err = svc.Count(context.Background(), "")
	assert.True(t, errors.Is(err, anagram.ErrEmptyInput))

	_, err = svc.Count(context.Background(), "!")
	assert.True(t, errors.Is(err, anagram.ErrInvalidInput))
	assert.False(t, errors.Is(err, anagram.ErrEmptyInput))
}

func TestService_Shuffle(t *testing.T) {
	svc := &shuffle.Service{}

	res, err := svc.Shuffle(context.Background(), "ab", 4)
	require.NoError(t, err)
	assert.Equal(t, "ab", res.Input)
	assert.Equal(t, "2", res.Total.String())
	if diff := cmp.Diff([]string{"ab", "ba"}, res.Page); diff != "" {
		t.Errorf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Shuffle_InvalidInput(t *testing.T) {
	svc := &shuffle.Service{}

	for _, in := range []string{"", "abc1", "a b"} {
		res, err := svc.Shuffle(context.Background(), in, 4)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, anagram.ErrInvalidInput, "input %q", in)
	}
}

func TestService_Shuffle_RecordsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })

	svc := &shuffle.Service{}
	_, err := svc.Shuffle(context.Background(), "stop", 3)
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "shuffle.Shuffle", spans[0].Name)

	attrs := map[string]int64{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(4), attrs["anagram.length"])
	assert.Equal(t, int64(3), attrs["anagram.limit"])
	assert.Equal(t, int64(3), attrs["anagram.page_size"])
}

func TestResult_MarshalJSON(t *testing.T) {
	total, ok := new(big.Int).SetString("403291461126605635584000000", 10)
	require.True(t, ok)

	data, err := json.Marshal(shuffle.Result{Input: "abc", Total: total})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"abc","total":403291461126605635584000000,"page":[]}`, string(data))

	data, err = json.Marshal(&shuffle.Result{Input: "ab", Total: big.NewInt(2), Page: []string{"ab", "ba"}})
	require.NoError(t, err)
	assert.Equal(t, `{"p":"ab","total":2,"page":["ab","ba"]}`, string(data))
}
