package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
	"github.com/stretchr/testify/require"
)

func TestRead_Basic(t *testing.T) {
	in := "3 3\na b 10\nb c 20\na c 5\n"
	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())
	require.Equal(t, 3, g.Size())

	w, ok := g.Weight("b", "a")
	require.True(t, ok)
	require.Equal(t, 10.0, w)
}

func TestRead_TolerantInput(t *testing.T) {
	// Blank lines, a short line, fewer edges than the header promises and a
	// trailing extra field must all be accepted.
	in := "4 10\n\n  a b 1 extra\nmalformed\nb c 2.5\n\n"
	g, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, g.Order())
	require.Equal(t, 2, g.Size())

	w, ok := g.Weight("b", "c")
	require.True(t, ok)
	require.Equal(t, 2.5, w)
}

func TestRead_Errors(t *testing.T) {
	_, err := graphio.Read(strings.NewReader(""))
	require.ErrorIs(t, err, graphio.ErrEmptyInput)

	_, err = graphio.Read(strings.NewReader("\n \n"))
	require.ErrorIs(t, err, graphio.ErrEmptyInput)

	_, err = graphio.Read(strings.NewReader("nope\n"))
	require.ErrorIs(t, err, graphio.ErrBadHeader)

	_, err = graphio.Read(strings.NewReader("x y\n"))
	require.ErrorIs(t, err, graphio.ErrBadHeader)

	_, err = graphio.Read(strings.NewReader("2 1\na b notanumber\n"))
	require.ErrorIs(t, err, graphio.ErrBadWeight)
}

func TestRead_NoEdges_IsEmptyGraph(t *testing.T) {
	// Header only: no endpoints ⇒ no vertices ⇒ the degenerate instance.
	_, err := graphio.Read(strings.NewReader("0 0\n"))
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := core.Build(nil, []core.Edge{
		{U: "a", V: "b", W: 10},
		{U: "b", V: "c", W: 2.5},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	require.Equal(t, "3 2\na b 10\nb c 2.5\n", buf.String())

	back, err := graphio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, g.Size(), back.Size())
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteResult(&buf, 30, []string{"a", "b", "c"}))
	require.Equal(t, "30\na b c\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteResult(&buf, 0, nil))
	require.Equal(t, "0\n\n", buf.String())
}
