// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import _ "embed"

// ShaderSource is the WGSL source of the vertex (vs_main) and fragment
// (fs_main) entry points, for hosts drawing on the GPU. It expects the
// host to define color_mapping(rgb: vec3<f32>) -> vec3<f32> ahead of it,
// and to draw 2N vertices with no vertex buffer bound.
//
//go:embed shaders/trajectory.wgsl
var ShaderSource string

//gosl:wgsl trajectory
/*
@group(0) @binding(0)
var<uniform> Vert: Params;

@group(0) @binding(1)
var<uniform> Frag: FragmentUniforms;

struct VsOut {
	@builtin(position) position: vec4<f32>,
	@location(0) ecc_anom: f32,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VsOut {
	var pr = Vert;
	let v = Vertex(idx, &pr);
	var out: VsOut;
	out.position = v.Position;
	out.ecc_anom = v.EccAnom;
	return out;
}

@fragment
fn fs_main(@location(0) ecc_anom: f32) -> @location(0) vec4<f32> {
	var fu = Frag;
	var f = 0.0;
	if (fu.AnomalyRange > 0.0) {
		f = ModeFade(ecc_anom, &fu);
	}
	let rgb = color_mapping(fu.SurfaceColor.xyz);
	return vec4<f32>(rgb, fu.SurfaceColor.w * f);
}
*/
//gosl:end trajectory
