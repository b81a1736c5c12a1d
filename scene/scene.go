// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene loads glTF 2.0 files into flat mesh, material, and
// node tables that can be uploaded directly to GPU buffers with
// [gpu.SetValueFrom].
package scene

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is the geometry of one glTF mesh primitive, flattened into
// arrays ready for vertex buffer upload.
type Mesh struct {
	// Name is the name of the source glTF mesh, if it has one.
	Name string

	// Pos is the vertex positions, 3 floats per vertex.
	Pos []float32

	// Normal is the vertex normals, 3 floats per vertex.
	// If the file has none, area-weighted normals are computed
	// from the triangles.
	Normal []float32

	// TexCoord is the vertex texture coordinates, 2 floats per
	// vertex, zero filled if the primitive has none.
	TexCoord []float32

	// Index is the triangle index list.
	Index []uint32

	// Material is the index of this primitive's material in
	// [Scene.Materials], or -1 if it has none.
	Material int
}

// NumVertex returns the number of vertices in the mesh.
func (ms *Mesh) NumVertex() int { return len(ms.Pos) / 3 }

// Material is the subset of the glTF PBR material model used for
// rendering: the metallic-roughness factors, base color, and the
// base color texture if present.
type Material struct {
	// Name is the name of the source glTF material, if it has one.
	Name string

	// Color is the base color factor, RGBA.
	Color math32.Vector4

	// Metallic is the metalness factor, 0 = dielectric, 1 = metal.
	Metallic float32

	// Roughness is the roughness factor, 0 = smooth, 1 = rough.
	Roughness float32

	// Image is the decoded base color texture, nil if the material
	// has none.
	Image image.Image
}

// Node is one node in the scene hierarchy.
type Node struct {
	// Name is the name of the source glTF node, if it has one.
	Name string

	// Mesh is the index in [Scene.Meshes] of the first primitive of
	// this node's mesh, or -1 if the node has no mesh. A glTF mesh
	// with multiple primitives produces consecutive entries.
	Mesh int

	// NumMesh is the number of consecutive primitives in
	// [Scene.Meshes] belonging to this node's mesh.
	NumMesh int

	// Matrix is the local transform relative to the parent node.
	Matrix math32.Matrix4

	// Children is the indexes of child nodes in [Scene.Nodes].
	Children []int
}

// Scene is a loaded glTF file: all mesh primitives, materials, and
// nodes in file order, plus the root nodes of the default scene.
type Scene struct {
	Meshes    []*Mesh
	Materials []*Material
	Nodes     []*Node

	// Roots is the indexes in [Scene.Nodes] of the top-level nodes
	// of the default scene.
	Roots []int
}

// Open loads a glTF 2.0 file (.gltf or .glb). External buffers and
// images referenced by relative URI are resolved against the file's
// directory.
func Open(fname string) (*Scene, error) {
	doc, err := gltf.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return load(doc, filepath.Dir(fname))
}

func load(doc *gltf.Document, dir string) (*Scene, error) {
	sc := &Scene{}
	if err := sc.loadMaterials(doc, dir); err != nil {
		return nil, err
	}
	// glTF mesh index -> first primitive index and count in sc.Meshes
	meshOff := make([][2]int, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		meshOff[mi][0] = len(sc.Meshes)
		for pi := range gm.Primitives {
			ms, err := loadPrimitive(doc, gm, pi)
			if err != nil {
				return nil, fmt.Errorf("scene: mesh %q primitive %d: %w", gm.Name, pi, err)
			}
			sc.Meshes = append(sc.Meshes, ms)
		}
		meshOff[mi][1] = len(sc.Meshes) - meshOff[mi][0]
	}
	sc.loadNodes(doc, meshOff)
	return sc, nil
}

func loadPrimitive(doc *gltf.Document, gm *gltf.Mesh, pi int) (*Mesh, error) {
	prim := gm.Primitives[pi]
	ms := &Mesh{Name: gm.Name, Material: -1}

	pa, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	pos, err := modeler.ReadPosition(doc, doc.Accessors[pa], nil)
	if err != nil {
		return nil, err
	}
	ms.Pos = make([]float32, 0, 3*len(pos))
	for _, p := range pos {
		ms.Pos = append(ms.Pos, p[0], p[1], p[2])
	}

	if prim.Indices != nil {
		ix, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, err
		}
		ms.Index = ix
	} else {
		ms.Index = make([]uint32, len(pos))
		for i := range ms.Index {
			ms.Index[i] = uint32(i)
		}
	}

	if na, ok := prim.Attributes["NORMAL"]; ok {
		nrm, err := modeler.ReadNormal(doc, doc.Accessors[na], nil)
		if err != nil {
			return nil, err
		}
		ms.Normal = make([]float32, 0, 3*len(nrm))
		for _, n := range nrm {
			ms.Normal = append(ms.Normal, n[0], n[1], n[2])
		}
	} else {
		ms.Normal = genNormals(ms.Pos, ms.Index)
	}

	ms.TexCoord = make([]float32, 2*len(pos))
	if ta, ok := prim.Attributes["TEXCOORD_0"]; ok {
		tc, err := modeler.ReadTextureCoord(doc, doc.Accessors[ta], nil)
		if err != nil {
			return nil, err
		}
		for i, t := range tc {
			ms.TexCoord[2*i] = t[0]
			ms.TexCoord[2*i+1] = t[1]
		}
	}

	if prim.Material != nil {
		ms.Material = *prim.Material
	}
	return ms, nil
}

// genNormals computes area-weighted vertex normals from the triangle
// list, for primitives that have no NORMAL attribute.
func genNormals(pos []float32, index []uint32) []float32 {
	sum := make([]math32.Vector3, len(pos)/3)
	for i := 0; i+2 < len(index); i += 3 {
		a, b, c := index[i], index[i+1], index[i+2]
		va := math32.Vec3(pos[3*a], pos[3*a+1], pos[3*a+2])
		vb := math32.Vec3(pos[3*b], pos[3*b+1], pos[3*b+2])
		vc := math32.Vec3(pos[3*c], pos[3*c+1], pos[3*c+2])
		fn := vb.Sub(va).Cross(vc.Sub(va)) // length is 2x triangle area
		sum[a] = sum[a].Add(fn)
		sum[b] = sum[b].Add(fn)
		sum[c] = sum[c].Add(fn)
	}
	ns := make([]float32, 0, len(pos))
	for _, n := range sum {
		n = n.Normal()
		ns = append(ns, n.X, n.Y, n.Z)
	}
	return ns
}

func (sc *Scene) loadMaterials(doc *gltf.Document, dir string) error {
	sc.Materials = make([]*Material, 0, len(doc.Materials))
	for _, gm := range doc.Materials {
		mt := &Material{Name: gm.Name, Color: math32.Vec4(1, 1, 1, 1), Metallic: 1, Roughness: 1}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mt.Color = math32.Vec4(float32(cf[0]), float32(cf[1]), float32(cf[2]), float32(cf[3]))
			mt.Metallic = float32(pbr.MetallicFactorOrDefault())
			mt.Roughness = float32(pbr.RoughnessFactorOrDefault())
			if pbr.BaseColorTexture != nil {
				img, err := loadImage(doc, dir, int(pbr.BaseColorTexture.Index))
				if err != nil {
					return fmt.Errorf("scene: material %q: %w", gm.Name, err)
				}
				mt.Image = img
			}
		}
		sc.Materials = append(sc.Materials, mt)
	}
	return nil
}

// loadImage decodes the image behind texture ti, from its buffer view
// or from an external file next to the glTF file. Unsupported image
// sources produce a nil image, not an error.
func loadImage(doc *gltf.Document, dir string, ti int) (image.Image, error) {
	if ti < 0 || ti >= len(doc.Textures) {
		return nil, fmt.Errorf("texture index %d out of range", ti)
	}
	src := doc.Textures[ti].Source
	if src == nil {
		return nil, nil
	}
	gim := doc.Images[*src]
	switch {
	case gim.BufferView != nil:
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*gim.BufferView])
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", *src, err)
		}
		return img, nil
	case gim.URI != "" && !gim.IsEmbeddedResource():
		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(gim.URI)))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", gim.URI, err)
		}
		return img, nil
	}
	logx.PrintlnWarn("scene: skipping unsupported image source for texture", ti)
	return nil, nil
}

func (sc *Scene) loadNodes(doc *gltf.Document, meshOff [][2]int) {
	sc.Nodes = make([]*Node, len(doc.Nodes))
	hasParent := make([]bool, len(doc.Nodes))
	for ni, gn := range doc.Nodes {
		nd := &Node{Name: gn.Name, Mesh: -1}
		if gn.Mesh != nil {
			nd.Mesh = meshOff[*gn.Mesh][0]
			nd.NumMesh = meshOff[*gn.Mesh][1]
		}
		tr := gn.TranslationOrDefault()
		ro := gn.RotationOrDefault()
		sz := gn.ScaleOrDefault()
		pos := math32.Vec3(float32(tr[0]), float32(tr[1]), float32(tr[2]))
		rot := math32.Quat{X: float32(ro[0]), Y: float32(ro[1]), Z: float32(ro[2]), W: float32(ro[3])}
		scl := math32.Vec3(float32(sz[0]), float32(sz[1]), float32(sz[2]))
		nd.Matrix.SetTransform(pos, rot, scl)
		nd.Children = make([]int, len(gn.Children))
		for i, ci := range gn.Children {
			nd.Children[i] = int(ci)
			hasParent[int(ci)] = true
		}
		sc.Nodes[ni] = nd
	}
	switch {
	case doc.Scene != nil:
		for _, ni := range doc.Scenes[*doc.Scene].Nodes {
			sc.Roots = append(sc.Roots, int(ni))
		}
	case len(doc.Scenes) > 0:
		for _, ni := range doc.Scenes[0].Nodes {
			sc.Roots = append(sc.Roots, int(ni))
		}
	default:
		for ni := range sc.Nodes {
			if !hasParent[ni] {
				sc.Roots = append(sc.Roots, ni)
			}
		}
	}
}

// Instance is one mesh primitive to draw: indexes into the scene
// tables plus the composed world matrix for the node.
type Instance struct {
	Node, Mesh int

	// Matrix is the node's world matrix, composed from the root.
	Matrix math32.Matrix4
}

// Instances returns one entry per mesh primitive reachable from
// [Scene.Roots], in depth-first order, with world matrices composed
// down the hierarchy.
func (sc *Scene) Instances() []Instance {
	var ins []Instance
	ident := math32.Identity4()
	for _, ri := range sc.Roots {
		ins = sc.instances(ins, ri, ident)
	}
	return ins
}

func (sc *Scene) instances(ins []Instance, ni int, parent *math32.Matrix4) []Instance {
	nd := sc.Nodes[ni]
	var world math32.Matrix4
	world.MulMatrices(parent, &nd.Matrix)
	for pi := range nd.NumMesh {
		ins = append(ins, Instance{Node: ni, Mesh: nd.Mesh + pi, Matrix: world})
	}
	for _, ci := range nd.Children {
		ins = sc.instances(ins, ci, &world)
	}
	return ins
}
