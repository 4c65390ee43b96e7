package figure

import "math"

// selfLoopHeadRatio is the arrowhead length of a BezierArrow relative to its
// tangent radius.
const selfLoopHeadRatio = 0.13

// BezierArrow returns a cubic Bezier from start to end whose tangents leave
// start at angleStart and arrive at end along angleEnd (degrees), with the
// control points radius away from the endpoints, plus a triangular arrowhead
// at end. It works in y-up data coordinates.
//
// The head is 0.13·|radius| long and 0.8 times as wide, pointing along
// end - ctrl2.
func BezierArrow(start, end Vec, angleStart, angleEnd, radius float64) (curve [4]Vec, head [3]Vec) {
	a := angleStart * math.Pi / 180
	b := angleEnd * math.Pi / 180

	ctrl1 := Vec{start.X + radius*math.Cos(a), start.Y + radius*math.Sin(a)}
	ctrl2 := Vec{end.X - radius*math.Cos(b), end.Y - radius*math.Sin(b)}
	curve = [4]Vec{start, ctrl1, ctrl2, end}

	length := selfLoopHeadRatio * math.Abs(radius)
	head = arrowhead(end, end.Sub(ctrl2).Unit(), length, 0.4*length)
	return curve, head
}

// arrowhead returns the triangle with its tip at tip, pointing along dir.
func arrowhead(tip, dir Vec, length, halfWidth float64) [3]Vec {
	base := tip.Sub(dir.Scale(length))
	side := dir.Perp().Scale(halfWidth)
	return [3]Vec{tip, base.Add(side), base.Sub(side)}
}

// Arc3 returns the control point of a quadratic arc from a to b in y-down
// pixel space. The curve bends to the right of the direction of travel as
// seen on screen for positive rad, so a→b and b→a never overlap.
func Arc3(a, b Vec, rad float64) Vec {
	mid := a.Lerp(b, 0.5)
	d := b.Sub(a)
	return Vec{mid.X - rad*d.Y, mid.Y + rad*d.X}
}

// quadAt evaluates the quadratic Bezier p at t.
func quadAt(p [3]Vec, t float64) Vec {
	return p[0].Lerp(p[1], t).Lerp(p[1].Lerp(p[2], t), t)
}

// quadSub returns the part of p between t0 and t1 as a quadratic.
func quadSub(p [3]Vec, t0, t1 float64) [3]Vec {
	ctrl := p[0].Scale((1 - t0) * (1 - t1)).
		Add(p[1].Scale((1-t0)*t1 + t0*(1-t1))).
		Add(p[2].Scale(t0 * t1))
	return [3]Vec{quadAt(p, t0), ctrl, quadAt(p, t1)}
}

// leaveRadius finds the parameter at which p, walked from its start
// (fromEnd false) or its end (fromEnd true), first gets r away from that
// endpoint. It returns 0 or 1 when the curve never gets that far.
func leaveRadius(p [3]Vec, r float64, fromEnd bool) float64 {
	origin, lo, hi := p[0], 0.0, 1.0
	if fromEnd {
		origin = p[2]
	}
	if r <= 0 {
		if fromEnd {
			return 1
		}
		return 0
	}
	inside := func(t float64) bool { return quadAt(p, t).Sub(origin).Len() < r }

	if fromEnd {
		if inside(0) {
			return 0
		}
		for range 50 {
			mid := (lo + hi) / 2
			if inside(mid) {
				hi = mid
			} else {
				lo = mid
			}
		}
		return lo
	}
	if inside(1) {
		return 1
	}
	for range 50 {
		mid := (lo + hi) / 2
		if inside(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// shrinkQuad trims p so that it starts rA away from its first point and ends
// rB away from its last. ok is false when nothing remains.
func shrinkQuad(p [3]Vec, rA, rB float64) (out [3]Vec, ok bool) {
	t0 := leaveRadius(p, rA, false)
	t1 := leaveRadius(p, rB, true)
	if t1 <= t0 {
		return p, false
	}
	return quadSub(p, t0, t1), true
}

// uprightAngle returns the angle of d in degrees, counterclockwise with y
// up, folded into (-90, 90] so text along it is never upside down.
func uprightAngle(d Vec) float64 {
	a := math.Atan2(d.Y, d.X) * 180 / math.Pi
	switch {
	case a > 90:
		a -= 180
	case a <= -90:
		a += 180
	}
	return a
}
