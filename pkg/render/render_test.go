package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/homeplanner/pkg/plan"
	"github.com/ChicagoDave/homeplanner/pkg/spec"
)

func TestRenderProducesPNG(t *testing.T) {
	sc, _, err := plan.Generate(&spec.Specification{Area: 2000, Bedrooms: 3, Bathrooms: 2, Style: "Modern"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New().Render(sc, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Positive(t, b.Dx())
	assert.Positive(t, b.Dy())
}

func TestRenderNilScene(t *testing.T) {
	assert.Error(t, New().Render(nil, &bytes.Buffer{}))
}

func TestRenderDeterminism(t *testing.T) {
	s := &spec.Specification{Area: 1500, Bedrooms: 2, Bathrooms: 1, Style: "Ranch"}
	var a, b bytes.Buffer

	sc1, _, err := plan.Generate(s)
	require.NoError(t, err)
	require.NoError(t, New().Render(sc1, &a))

	sc2, _, err := plan.Generate(s)
	require.NoError(t, err)
	require.NoError(t, New().Render(sc2, &b))

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestResolveFallback(t *testing.T) {
	assert.Equal(t, palette["wall"], resolve("wall"))
	assert.Equal(t, fallback, resolve("no-such-token"))
}
