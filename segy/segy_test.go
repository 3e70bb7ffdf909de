package segy_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-segy/field"
	"github.com/robert-malhotra/go-segy/segy"
)

// makeSurvey creates a structured file, writes the coordinate header
// words and a deterministic fill (trace i, sample s holds i*100+s),
// and returns its path.
func makeSurvey(t *testing.T, spec segy.Spec) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.sgy")

	if spec.Format == 0 {
		spec.Format = segy.FormatIEEEFloat
	}
	f, err := segy.Create(path, spec)
	require.NoError(t, err)
	defer f.Close()

	offsets := spec.Offsets
	if len(offsets) == 0 {
		offsets = []int{1}
	}
	slow, fast := spec.Ilines, spec.Xlines
	if spec.Sorting == segy.SortingCrossline {
		slow, fast = spec.Xlines, spec.Ilines
	}

	i := 0
	for _, s := range slow {
		for _, ff := range fast {
			for _, o := range offsets {
				il, xl := s, ff
				if spec.Sorting == segy.SortingCrossline {
					il, xl = ff, s
				}
				require.NoError(t, f.Header().Update(i, map[field.Tag]int{
					field.Inline:    il,
					field.Crossline: xl,
					field.Offset:    o,
				}))
				samples := make([]float32, spec.Samplecount)
				for k := range samples {
					samples[k] = float32(i*100 + k)
				}
				require.NoError(t, f.Trace().Set(i, samples))
				i++
			}
		}
	}
	require.NoError(t, f.Flush())
	return path
}

func smallSpec() segy.Spec {
	return segy.Spec{
		Ilines:      []int{1, 2},
		Xlines:      []int{10, 20, 30},
		Samplecount: 4,
	}
}

func TestOpenStructured(t *testing.T) {
	path := makeSurvey(t, smallSpec())

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.False(t, f.Unstructured())
	require.Equal(t, segy.SortingInline, f.Sorting())
	require.Equal(t, []int{1, 2}, f.Ilines())
	require.Equal(t, []int{10, 20, 30}, f.Xlines())
	require.Equal(t, []int{1}, f.Offsets())
	require.Equal(t, 6, f.Tracecount())
	require.Equal(t, 4, f.Samplecount())

	il, err := f.Iline()
	require.NoError(t, err)
	require.Equal(t, 3, il.Length())
	require.Equal(t, 1, il.Stride())
	xl, err := f.Xline()
	require.NoError(t, err)
	require.Equal(t, 2, xl.Length())
	require.Equal(t, 3, xl.Stride())

	// Volume invariant: line length × line count × offset count is
	// exactly the trace count.
	require.Equal(t, f.Tracecount(), il.Length()*len(f.Ilines())*len(f.Offsets()))
	require.Equal(t, f.Tracecount(), xl.Length()*len(f.Xlines())*len(f.Offsets()))
}

func TestLineReadOrder(t *testing.T) {
	path := makeSurvey(t, smallSpec())

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	// Inline 1 covers traces 0, 1, 2 in crossline order 10, 20, 30.
	il, err := f.Iline()
	require.NoError(t, err)
	traces, err := il.Get(1)
	require.NoError(t, err)
	require.Len(t, traces, 3)
	for k, tr := range traces {
		require.Equal(t, float32(k*100), tr[0])
	}

	// Crossline 20 covers traces 1 and 4, in inline order 1, 2.
	xl, err := f.Xline()
	require.NoError(t, err)
	traces, err = xl.Get(20)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	require.Equal(t, float32(100), traces[0][0])
	require.Equal(t, float32(400), traces[1][0])

	_, err = il.Get(99)
	require.ErrorIs(t, err, segy.ErrNotFound)
}

func TestLineRoundTrip(t *testing.T) {
	path := makeSurvey(t, smallSpec())

	f, err := segy.Open(path, segy.WithWritable())
	require.NoError(t, err)
	defer f.Close()

	il, err := f.Iline()
	require.NoError(t, err)

	want := [][]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	n, err := il.Set(2, slicesSeq(want))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := il.Get(2)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Inline 1 is untouched.
	other, err := il.Get(1)
	require.NoError(t, err)
	require.Equal(t, float32(0), other[0][0])
}

func TestLineSliceAddressing(t *testing.T) {
	path := makeSurvey(t, segy.Spec{
		Ilines:      []int{1, 2, 3, 4, 5},
		Xlines:      []int{10, 20},
		Samplecount: 2,
	})

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	il, err := f.Iline()
	require.NoError(t, err)

	require.Equal(t, []int{1, 3}, il.LabelsIn(1, 5, 2))
	require.Equal(t, []int{5, 4, 3}, il.LabelsIn(5, 2, -1))
	require.Empty(t, il.LabelsIn(6, 9, 1))

	traces, err := il.GetSlice(1, 5, 2)
	require.NoError(t, err)
	require.Len(t, traces, 4) // two labels × two crosslines
	require.Equal(t, float32(0), traces[0][0])
	require.Equal(t, float32(400), traces[2][0])
}

func TestGatherCellAndTrace(t *testing.T) {
	path := makeSurvey(t, smallSpec())

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	g, err := f.Gather()
	require.NoError(t, err)

	// (inline 1, crossline 20) is physical trace 1.
	cell, err := g.Cell(1, 20)
	require.NoError(t, err)
	require.Len(t, cell, 1)
	require.Equal(t, float32(100), cell[0][0])

	tr, err := g.Trace(2, 10, 1)
	require.NoError(t, err)
	require.Equal(t, float32(300), tr[0])

	_, err = g.Cell(1, 99)
	require.ErrorIs(t, err, segy.ErrNotFound)
}

func TestGatherCube(t *testing.T) {
	path := makeSurvey(t, smallSpec())

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	g, err := f.Gather()
	require.NoError(t, err)

	cube, err := g.Get(segy.GatherQuery{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, cube.Ilines)
	require.Equal(t, []int{10, 20, 30}, cube.Xlines)
	require.Len(t, cube.Data, 2*3*1*4)
	require.Equal(t, float32(400), cube.At(1, 1, 0, 0))
	require.Equal(t, float32(403), cube.At(1, 1, 0, 3))

	sub, err := g.Get(segy.GatherQuery{Ilines: []int{2}, Xlines: []int{10, 30}})
	require.NoError(t, err)
	require.Len(t, sub.Data, 1*2*1*4)
	require.Equal(t, float32(300), sub.At(0, 0, 0, 0))
	require.Equal(t, float32(500), sub.At(0, 1, 0, 0))

	_, err = g.Get(segy.GatherQuery{Ilines: []int{7}})
	require.ErrorIs(t, err, segy.ErrNotFound)
}

func TestPrestackOffsets(t *testing.T) {
	spec := segy.Spec{
		Ilines:      []int{1, 2},
		Xlines:      []int{10, 20},
		Offsets:     []int{100, 200},
		Samplecount: 2,
	}
	path := makeSurvey(t, spec)

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []int{100, 200}, f.Offsets())
	require.Equal(t, 8, f.Tracecount())

	il, err := f.Iline()
	require.NoError(t, err)
	require.Equal(t, 2, il.Stride())

	// All offsets: length × noffsets traces, position-major.
	traces, err := il.Get(1)
	require.NoError(t, err)
	require.Len(t, traces, 4)
	require.Equal(t, float32(0), traces[0][0])   // xline 10, offset 100
	require.Equal(t, float32(100), traces[1][0]) // xline 10, offset 200
	require.Equal(t, float32(200), traces[2][0]) // xline 20, offset 100

	// Single offset: length traces.
	traces, err = il.GetOffset(1, 200)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	require.Equal(t, float32(100), traces[0][0])
	require.Equal(t, float32(300), traces[1][0])

	_, err = il.GetOffset(1, 999)
	require.ErrorIs(t, err, segy.ErrNotFound)

	g, err := f.Gather()
	require.NoError(t, err)
	cell, err := g.Cell(2, 20)
	require.NoError(t, err)
	require.Len(t, cell, 2)
	require.Equal(t, float32(600), cell[0][0])
	require.Equal(t, float32(700), cell[1][0])

	tr, err := g.Trace(2, 20, 200)
	require.NoError(t, err)
	require.Equal(t, float32(700), tr[0])
}

func TestCrosslineSortedFile(t *testing.T) {
	spec := segy.Spec{
		Ilines:      []int{1, 2, 3},
		Xlines:      []int{10, 20},
		Sorting:     segy.SortingCrossline,
		Samplecount: 2,
	}
	path := makeSurvey(t, spec)

	f, err := segy.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, segy.SortingCrossline, f.Sorting())

	fast, err := f.Fast()
	require.NoError(t, err)
	require.Equal(t, "inline", fast.Axis())
	slow, err := f.Slow()
	require.NoError(t, err)
	require.Equal(t, "crossline", slow.Axis())

	// Crossline 20 is the second group: traces 3, 4, 5.
	xl, err := f.Xline()
	require.NoError(t, err)
	traces, err := xl.Get(20)
	require.NoError(t, err)
	require.Len(t, traces, 3)
	require.Equal(t, float32(300), traces[0][0])

	// Inline 2 crosses the groups: traces 1 and 4.
	il, err := f.Iline()
	require.NoError(t, err)
	traces, err = il.Get(2)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	require.Equal(t, float32(100), traces[0][0])
	require.Equal(t, float32(400), traces[1][0])
}
