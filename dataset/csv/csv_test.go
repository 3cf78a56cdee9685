package csv

import (
	"context"
	"strings"
	"testing"

	"github.com/pbanos/pmmltree/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = `species,sepal length,color
setosa,4.5,red
virginica,?,
`

func TestReadSet(t *testing.T) {
	ctx := context.Background()
	ds, err := ReadSet(strings.NewReader(content), []string{"sepal length", "color", "species", "unused"})
	require.NoError(t, err)

	count, err := ds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	samples, err := ds.Samples(ctx)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	v, err := samples[0].ValueFor(ctx, "sepal length")
	require.NoError(t, err)
	assert.Equal(t, "4.5", v)
	v, err = samples[0].ValueFor(ctx, "species")
	require.NoError(t, err)
	assert.Equal(t, "setosa", v)

	v, err = samples[1].ValueFor(ctx, "sepal length")
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = samples[1].ValueFor(ctx, "color")
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = samples[1].ValueFor(ctx, "unused")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadSetHeaderErrors(t *testing.T) {
	_, err := ReadSet(strings.NewReader(content), []string{"species", "sepal length"})
	assert.Error(t, err)

	_, err = ReadSet(strings.NewReader("a,a\n1,2\n"), []string{"a"})
	assert.Error(t, err)

	_, err = ReadSet(strings.NewReader(""), []string{"a"})
	assert.Error(t, err)
}

func TestReadSetBySampleStops(t *testing.T) {
	var read []int
	err := ReadSetBySample(strings.NewReader(content), []string{"sepal length", "color", "species"}, func(i int, _ dataset.Sample) (bool, error) {
		read = append(read, i)
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, read)
}

func TestReadSetRowErrors(t *testing.T) {
	_, err := ReadSet(strings.NewReader("a,b\n1\n"), []string{"a", "b"})
	assert.Error(t, err)
}
