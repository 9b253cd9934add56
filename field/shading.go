package field

// minViewDepth bounds the view-space depth used for point sizing. A vertex
// exactly at the camera plane would otherwise divide by zero.
const minViewDepth = -1e-4

// PointSize computes the perspective-attenuated render size of a point.
// viewZ is the view-space depth, negative for vertices in front of the
// camera. Depths at or behind the camera plane are clamped to minViewDepth;
// callers cull such vertices before drawing.
func PointSize(baseSize, referenceDist, viewZ float32) float32 {
	if viewZ > minViewDepth {
		viewZ = minViewDepth
	}
	return baseSize * (referenceDist / -viewZ)
}

// SpriteVisible reports whether a fragment at local offset (u, v) within a
// point's [0,1]x[0,1] footprint is inside the circular sprite. Fragments at
// distance >= 0.5 from the center are discarded, so the boundary itself is
// not drawn.
func SpriteVisible(u, v float32) bool {
	du := u - 0.5
	dv := v - 0.5
	return du*du+dv*dv < 0.25
}

// Alpha computes a point's opacity from its elevation: a 0.8 base slightly
// modulated so raised points read brighter. The result is clamped to [0,1];
// the renderer contract does not rely on downstream clamping.
func Alpha(elevation float32) float32 {
	return clamp(0.8+elevation*0.1, 0, 1)
}
