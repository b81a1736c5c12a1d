// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCube(t *testing.T) {
	pos := CubePos()
	tex := CubeTexCoord()
	nrm := CubeNormal()
	idx := CubeIndex()

	assert.Equal(t, CubeVertexN*3, len(pos))
	assert.Equal(t, CubeVertexN*2, len(tex))
	assert.Equal(t, CubeVertexN*3, len(nrm))
	assert.Equal(t, CubeIndexN, len(idx))

	for _, p := range pos {
		assert.True(t, p == 0.5 || p == -0.5)
	}
	for _, uv := range tex {
		assert.True(t, uv >= 0 && uv <= 1)
	}
	for _, ix := range idx {
		assert.Less(t, int(ix), CubeVertexN)
	}

	// each vertex normal is a unit axis vector
	for v := range CubeVertexN {
		sum := float32(0)
		for c := range 3 {
			n := nrm[v*3+c]
			assert.True(t, n == 0 || n == 1 || n == -1)
			sum += n * n
		}
		assert.Equal(t, float32(1), sum)
	}

	// both triangles of a face index only that face's 4 vertices
	for f := range 6 {
		for i := range 6 {
			ix := int(idx[f*6+i])
			assert.GreaterOrEqual(t, ix, f*4)
			assert.Less(t, ix, f*4+4)
		}
	}
}

func TestQuad(t *testing.T) {
	pos := QuadPos()
	idx := QuadIndex()
	assert.Equal(t, 8, len(pos))
	assert.Equal(t, len(pos), len(QuadTexCoord()))
	assert.Equal(t, 6, len(idx))
	for _, ix := range idx {
		assert.Less(t, int(ix), 4)
	}
}

func TestFullscreenTri(t *testing.T) {
	pos := FullscreenTriPos()
	assert.Equal(t, 6, len(pos))
	// must cover all of clip space: [-1,1] in x and y
	assert.LessOrEqual(t, pos[0], float32(-1))
	assert.GreaterOrEqual(t, pos[2], float32(1))
	assert.GreaterOrEqual(t, pos[5], float32(1))
}
