// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the shared vertex data used by the example
// programs: an indexed unit cube, a unit quad, and a fullscreen
// triangle. All slices are flat float32 data in the layout that
// [gpu.SetValueFrom] expects for vertex values.
package geom

// CubeVertexN is the number of cube vertices: 4 per face,
// so each face can have its own texture coordinates and normal.
const CubeVertexN = 24

// CubeIndexN is the number of cube triangle indexes: 2 triangles
// per face.
const CubeIndexN = 36

// CubePos returns the cube vertex positions, xyz per vertex,
// centered on the origin with edge length 1.
// Face order: front, right, left, back, top, bottom.
func CubePos() []float32 {
	return []float32{
		-0.5, 0.5, -0.5, // front face
		0.5, -0.5, -0.5,
		-0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,

		0.5, -0.5, -0.5, // right face
		0.5, 0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, -0.5,

		-0.5, 0.5, 0.5, // left face
		-0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
		-0.5, 0.5, -0.5,

		0.5, 0.5, 0.5, // back face
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		-0.5, 0.5, 0.5,

		-0.5, 0.5, -0.5, // top face
		0.5, 0.5, 0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5,

		0.5, -0.5, 0.5, // bottom face
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5,
	}
}

// CubeTexCoord returns the cube texture coordinates, uv per vertex,
// in the same vertex order as [CubePos].
func CubeTexCoord() []float32 {
	return []float32{
		0, 0, // front face
		1, 1,
		0, 1,
		1, 0,

		0, 1, // right face
		1, 0,
		1, 1,
		0, 0,

		0, 0, // left face
		1, 1,
		0, 1,
		1, 0,

		0, 0, // back face
		1, 1,
		0, 1,
		1, 0,

		0, 1, // top face
		1, 0,
		1, 1,
		0, 0,

		1, 1, // bottom face
		0, 0,
		1, 0,
		0, 1,
	}
}

// CubeNormal returns the cube normals, xyz per vertex, in the same
// vertex order as [CubePos]. All four vertices of a face share the
// face normal.
func CubeNormal() []float32 {
	ns := make([]float32, 0, CubeVertexN*3)
	for _, n := range [][3]float32{
		{0, 0, -1}, // front face
		{1, 0, 0},  // right face
		{-1, 0, 0}, // left face
		{0, 0, 1},  // back face
		{0, 1, 0},  // top face
		{0, -1, 0}, // bottom face
	} {
		for range 4 {
			ns = append(ns, n[0], n[1], n[2])
		}
	}
	return ns
}

// CubeIndex returns the cube triangle indexes, two
// counter-clockwise-wound triangles per face.
func CubeIndex() []uint16 {
	ix := make([]uint16, 0, CubeIndexN)
	for f := range uint16(6) {
		o := f * 4
		ix = append(ix, o, o+1, o+2, o, o+3, o+1)
	}
	return ix
}

// QuadPos returns a unit quad in the xy plane from (0,0) to (1,1),
// xy per vertex, for use with [QuadIndex].
func QuadPos() []float32 {
	return []float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}
}

// QuadTexCoord returns texture coordinates for [QuadPos], with
// v increasing downward in texture space.
func QuadTexCoord() []float32 {
	return []float32{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}
}

// QuadIndex returns the two triangle indexes for [QuadPos].
func QuadIndex() []uint16 {
	return []uint16{0, 1, 2, 2, 1, 3}
}

// FullscreenTriPos returns one large triangle covering the whole
// of clip space, xy per vertex, so fullscreen passes need no index
// buffer and no quad seam.
func FullscreenTriPos() []float32 {
	return []float32{
		-1, -1,
		3, -1,
		-1, 3,
	}
}
