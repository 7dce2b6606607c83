package orbital

import (
	"cmp"
	"slices"
)

// latticePoint is an accepted voxel in scan-loop coordinates: m is the
// major index, u the vertical minor, v the horizontal minor.
type latticePoint struct {
	m, u, v int
}

// columnPoint is an accepted voxel of the current slice with the major
// index dropped.
type columnPoint struct {
	u, v int
}

func comparePoint(a, b latticePoint) int {
	if c := cmp.Compare(a.m, b.m); c != 0 {
		return c
	}
	if c := cmp.Compare(a.u, b.u); c != 0 {
		return c
	}
	return cmp.Compare(a.v, b.v)
}

func compareColumn(a, b columnPoint) int {
	if c := cmp.Compare(a.u, b.u); c != 0 {
		return c
	}
	return cmp.Compare(a.v, b.v)
}

// adjacency records the voxels accepted so far. The scan visits loop
// coordinates in ascending order, so appending keeps both slices sorted and
// lookups are binary searches.
//
// points spans the whole pass; columns spans only the slice being scanned
// and is cleared whenever the minor axes wrap.
type adjacency struct {
	points  []latticePoint
	columns []columnPoint
	slice   int
}

// add records an accepted voxel.
func (a *adjacency) add(m, u, v int) {
	a.beginSlice(m)
	a.points = append(a.points, latticePoint{m, u, v})
	a.columns = append(a.columns, columnPoint{u, v})
}

// beginSlice drops the per-slice records when the scan moves to a new
// major index.
func (a *adjacency) beginSlice(m int) {
	if a.slice != m {
		a.columns = nil
		a.slice = m
	}
}

func (a *adjacency) solid(m, u, v int) bool {
	_, ok := slices.BinarySearchFunc(a.points, latticePoint{m, u, v}, comparePoint)
	return ok
}

func (a *adjacency) solidInSlice(u, v int) bool {
	_, ok := slices.BinarySearchFunc(a.columns, columnPoint{u, v}, compareColumn)
	return ok
}

// detach clips the per-slice records. points keeps its spare capacity so
// a pass grows it by amortized appends instead of a copy per step.
func (a adjacency) detach() adjacency {
	a.columns = slices.Clip(a.columns)
	return a
}
