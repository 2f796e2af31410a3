package algorithms

const fractalSrc = `//kage:unit pixels
package main

var Time float
var Resolution vec2
var Rotation float
var Symmetry float
var Complexity float
var Pulse float
var ColorMode float

func rot(p vec2, a float) vec2 {
	c := cos(a)
	s := sin(a)
	return vec2(c*p.x+s*p.y, -s*p.x+c*p.y)
}

func mod2(p vec2, size vec2) vec2 {
	return mod(p+size*0.5, size) - size*0.5
}

func modMirror2(p vec2, size vec2) vec2 {
	hs := size * 0.5
	c := floor((p + hs) / size)
	q := mod(p+hs, size) - hs
	return q * (mod(c, vec2(2.0))*2.0 - vec2(1.0))
}

func toSmith(p vec2) vec2 {
	d := (1.0-p.x)*(1.0-p.x) + p.y*p.y
	x := (1.0+p.x)*(1.0-p.x) - p.y*p.y
	y := 2.0 * p.y
	return vec2(x, y) / d
}

func fromSmith(p vec2) vec2 {
	d := (p.x+1.0)*(p.x+1.0) + p.y*p.y
	x := (p.x+1.0)*(p.x-1.0) + p.y*p.y
	y := 2.0 * p.y
	return vec2(x, y) / d
}

func toRect(p vec2) vec2 {
	return vec2(p.x*cos(p.y), p.x*sin(p.y))
}

func toPolar(p vec2) vec2 {
	return vec2(length(p), atan2(p.y, p.x))
}

func sdBox(p vec2, b vec2) float {
	d := abs(p) - b
	return length(max(d, vec2(0.0))) + min(max(d.x, d.y), 0.0)
}

func sdCircle(p vec2, r float) float {
	return length(p) - r
}

func mandalaDF(lt float, p vec2) float {
	pp := toPolar(p)
	sym := max(8.0, Symmetry)
	a := 6.283185307 / sym
	np := pp.y / a
	py := mod(pp.y, a)
	if mod(np, 2.0) > 1.0 {
		py = a - py
	}
	py += lt / 40.0
	q := abs(toRect(vec2(pp.x, py)))
	q -= vec2(0.5)

	d := 10000.0
	iterations := floor(max(2.0, 4.0*Complexity))
	for i := 0; i < 4; i++ {
		if float(i) < iterations {
			q = mod2(q, vec2(1.0))
			da := -0.2 * cos(lt*0.25)
			sb := sdBox(q, vec2(0.35)) + da
			cb := sdCircle(q+vec2(0.2), 0.25) + da
			d = min(max(sb, -cb), d)
			q *= 1.5 + 1.0*(0.5+0.5*sin(0.5*lt))
			q = rot(q, 1.0+Rotation*0.1)
		}
	}
	return d
}

func postProcess(lt float, c vec3, uv vec2) vec3 {
	r := length(uv)
	a := atan2(uv.y, uv.x)
	col := clamp(c, 0.0, 1.0)

	if ColorMode < 0.5 {
		col = pow(col, vec3(0.5))
	} else if ColorMode < 1.5 {
		col = pow(col, mix(vec3(0.5, 0.75, 1.5), vec3(0.45), r))
	} else if ColorMode < 2.5 {
		col = pow(col, mix(vec3(1.5, 0.5, 0.75), vec3(0.45), r))
	} else if ColorMode < 3.5 {
		col = pow(col, mix(vec3(0.7, 0.6, 0.4), vec3(0.45), r))
		col = mix(col, vec3(0.6, 0.4, 0.2), 0.3)
	} else {
		col = pow(col, mix(vec3(0.5, 0.8, 1.2), vec3(0.45), r))
		col = mix(col, vec3(0.0, 0.4, 0.8), 0.3)
	}

	col = col*0.6 + 0.4*col*col*(3.0-2.0*col)
	col = mix(col, vec3(dot(col, vec3(0.33))), -0.4)

	pulse := Pulse * sin(-lt+(50.0-25.0*sqrt(r))*r)
	col *= sqrt(1.0-0.7*pulse) * (1.0 - sin(0.5*r))

	col = clamp(col, 0.0, 1.0)
	ff := pow(1.0-0.75*sin(20.0*(0.5*a+r-0.1*lt)), 0.75)
	col = pow(col, vec3(ff*0.9, 0.8*ff, 0.7*ff))
	col *= 0.5 * sqrt(max(4.0-r*r, 0.0))
	return clamp(col, 0.0, 1.0)
}

func distort(lt float, uv vec2) vec2 {
	t := 0.1 * lt
	suv := toSmith(uv)
	suv += Complexity * vec2(cos(t), sin(sqrt(2.0)*t))
	return modMirror2(fromSmith(suv), vec2(2.0+sin(t)))
}

func ringColor1() vec3 {
	if ColorMode < 0.5 {
		return vec3(0.8)
	} else if ColorMode < 1.5 {
		return vec3(0.25, 0.65, 0.25)
	} else if ColorMode < 2.5 {
		return vec3(0.7, 0.3, 0.1)
	} else if ColorMode < 3.5 {
		return vec3(0.6, 0.4, 0.1)
	}
	return vec3(0.1, 0.5, 0.8)
}

func ringColor2() vec3 {
	if ColorMode < 0.5 {
		return vec3(0.3)
	} else if ColorMode < 1.5 {
		return vec3(0.65, 0.25, 0.65)
	} else if ColorMode < 2.5 {
		return vec3(0.1, 0.3, 0.7)
	} else if ColorMode < 3.5 {
		return vec3(0.3, 0.5, 0.2)
	}
	return vec3(0.0, 0.3, 0.6)
}

func sample(lt float, p vec2) vec3 {
	uv := rot(p*8.0, 0.1*lt+Rotation)

	nuv := distort(lt, uv)
	nuv2 := distort(lt, uv+vec2(0.0001))
	nl := length(nuv - nuv2)
	nf := 1.0 - smoothstep(0.0, 0.002, nl)

	d := mandalaDF(lt, nuv)
	col := vec3(0.0)
	nd := d / 0.065
	md := mod(d, 0.065)
	if abs(md) < 0.025 {
		if d > 0.0 {
			col = ringColor1() / abs(nd)
		} else {
			col = ringColor2() / abs(nd)
		}
	}
	if abs(d) < 0.0125 {
		col = vec3(1.0)
	}

	col += 1.0 - pow(nf, 5.0)
	col = postProcess(lt, col, nuv)
	col += 1.0 - nf
	return clamp(col, 0.0, 1.0)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	lt := Time + 30.0
	frag := vec2(dstPos.x, Resolution.y-dstPos.y)
	uv := (frag/Resolution - vec2(0.5)) * 2.0
	uv.x *= Resolution.x / Resolution.y

	unit := 1.0 / Resolution
	col := vec3(0.0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			col += sample(lt, uv-0.5*unit+unit*vec2(float(x), float(y)))
		}
	}
	col /= 4.0
	return vec4(col, 1.0)
}
`
