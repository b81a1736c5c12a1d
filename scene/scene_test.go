// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	sc, err := Open("testdata/triangle.gltf")
	assert.NoError(t, err)

	assert.Equal(t, 1, len(sc.Meshes))
	ms := sc.Meshes[0]
	assert.Equal(t, "triangle", ms.Name)
	assert.Equal(t, 3, ms.NumVertex())
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, ms.Pos)
	assert.Equal(t, []uint32{0, 1, 2}, ms.Index)
	assert.Equal(t, 6, len(ms.TexCoord))
	assert.Equal(t, 0, ms.Material)

	// no NORMAL attribute in the file: computed from the triangle,
	// which lies in the z = 0 plane with counterclockwise winding
	assert.Equal(t, 9, len(ms.Normal))
	for i := 0; i < 9; i += 3 {
		assert.InDelta(t, 0, ms.Normal[i], 1e-6)
		assert.InDelta(t, 0, ms.Normal[i+1], 1e-6)
		assert.InDelta(t, 1, ms.Normal[i+2], 1e-6)
	}

	assert.Equal(t, 1, len(sc.Materials))
	mt := sc.Materials[0]
	assert.Equal(t, "red", mt.Name)
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), mt.Color)
	assert.Equal(t, float32(0), mt.Metallic)
	assert.Equal(t, float32(0.5), mt.Roughness)
	assert.Nil(t, mt.Image)

	assert.Equal(t, 2, len(sc.Nodes))
	assert.Equal(t, []int{0}, sc.Roots)
	assert.Equal(t, []int{1}, sc.Nodes[0].Children)
	assert.Equal(t, -1, sc.Nodes[0].Mesh)
	assert.Equal(t, 0, sc.Nodes[1].Mesh)
	assert.Equal(t, 1, sc.Nodes[1].NumMesh)
}

func TestInstances(t *testing.T) {
	sc, err := Open("testdata/triangle.gltf")
	assert.NoError(t, err)

	ins := sc.Instances()
	assert.Equal(t, 1, len(ins))
	assert.Equal(t, 1, ins[0].Node)
	assert.Equal(t, 0, ins[0].Mesh)

	// world = translate(0,0,2) * scale(2,2,2): (0,1,0) -> (0,2,2)
	p := math32.Vec3(0, 1, 0).MulMatrix4AsVector4(&ins[0].Matrix, 1)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 2, p.Y, 1e-6)
	assert.InDelta(t, 2, p.Z, 1e-6)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("testdata/nosuch.gltf")
	assert.Error(t, err)
}

func TestOpenMalformed(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.gltf")
	assert.NoError(t, os.WriteFile(fn, []byte("{not gltf"), 0666))
	_, err := Open(fn)
	assert.Error(t, err)
}

func TestGenNormals(t *testing.T) {
	// two triangles sharing an edge, one in z = 0, one tilted:
	// shared vertices average the two face normals
	pos := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		1, 1, 1,
	}
	idx := []uint32{0, 1, 2, 1, 3, 2}
	ns := genNormals(pos, idx)
	assert.Equal(t, 12, len(ns))
	// vertex 0 belongs only to the flat triangle
	assert.InDelta(t, 0, ns[0], 1e-6)
	assert.InDelta(t, 0, ns[1], 1e-6)
	assert.InDelta(t, 1, ns[2], 1e-6)
	// all normals are unit length
	for i := 0; i < len(ns); i += 3 {
		v := math32.Vec3(ns[i], ns[i+1], ns[i+2])
		assert.InDelta(t, 1, v.Length(), 1e-5)
	}
}
