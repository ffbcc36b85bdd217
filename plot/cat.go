// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Charts over a categorical axis. go-gg has no layer vocabulary for
// boxes, swarms, violins, or bars, so these are drawn directly with
// svgo on a shared categorical frame.

package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	svg "github.com/ajstarks/svgo"

	"github.com/NEU-DS-4200-F23/titanic-eda/table"
)

const (
	marginLeft   = 55
	marginRight  = 15
	marginTop    = 15
	marginBottom = 45

	fontAttr = `font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`
)

// A frame is the pixel geometry of a categorical plot: a horizontal
// band per category and a linear vertical scale.
type frame struct {
	w, h   int
	px, py int
	pw, ph int
	lin    scale.Linear
}

// newFrame lays out a frame for the value domain [lo, hi]. The domain
// is widened by 5% on each end unless padLo is false, in which case
// the lower bound is kept exact (bars want a zero baseline).
func newFrame(w, h int, lo, hi float64, padLo bool) *frame {
	if lo == hi {
		hi = lo + 1
	}
	pad := 0.05 * (hi - lo)
	min := lo - pad
	if !padLo {
		min = lo
	}
	return &frame{
		w: w, h: h,
		px: marginLeft, py: marginTop,
		pw:  w - marginLeft - marginRight,
		ph:  h - marginTop - marginBottom,
		lin: scale.Linear{Min: min, Max: hi + pad},
	}
}

// y returns the pixel y of value v.
func (f *frame) y(v float64) int {
	return f.py + f.ph - int(f.lin.Map(v)*float64(f.ph)+0.5)
}

// band returns the pixel x extent of category band i of n.
func (f *frame) band(i, n int) (lo, hi int) {
	bw := float64(f.pw) / float64(n)
	return f.px + int(float64(i)*bw), f.px + int(float64(i+1)*bw)
}

// draw renders the plot panel, horizontal grid with tick labels,
// category labels, and axis titles.
func (f *frame) draw(s *svg.SVG, cats []string, xlabel, ylabel string) {
	s.Rect(f.px, f.py, f.pw, f.ph, "fill:#eeeeee")
	major, _ := f.lin.Ticks(scale.TickOptions{Max: 6})
	for _, v := range major {
		y := f.y(v)
		s.Line(f.px, y, f.px+f.pw, y, "stroke:white;stroke-width:2")
		s.Text(f.px-8, y+4, fmt.Sprintf("%.6g", v), "text-anchor:end;font-size:11px")
	}
	for i, c := range cats {
		lo, hi := f.band(i, len(cats))
		s.Text((lo+hi)/2, f.py+f.ph+18, c, "text-anchor:middle;font-size:11px")
	}
	s.Text(f.px+f.pw/2, f.h-8, xlabel, "text-anchor:middle;font-size:12px")
	s.TranslateRotate(14, f.py+f.ph/2, -90)
	s.Text(0, 0, ylabel, "text-anchor:middle;font-size:12px")
	s.Gend()
}

func fillStyle(c color.RGBA) string {
	return fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
}

// groupValues resolves the grouped, non-missing values of y per
// distinct value of x. Groups whose cells are all missing are kept,
// with no values, so band positions stay stable.
func groupValues(t *table.Table, x, y string) (keys []string, vals [][]float64, err error) {
	gs, err := t.GroupBy(x)
	if err != nil {
		return nil, nil, err
	}
	for _, g := range gs {
		vs, err := floats(g.Table, y)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, g.Key)
		vals = append(vals, vs)
	}
	return keys, vals, nil
}

// Box draws the five-number summary of Y for each distinct value of
// X: an interquartile box with a median line, whiskers to the
// furthest observations within 1.5 IQR of the box, and individual
// fliers beyond them.
type Box struct {
	X, Y string
}

func (b Box) render(r *Renderer, t *table.Table, w io.Writer) error {
	keys, vals, err := groupValues(t, b.X, b.Y)
	if err != nil {
		return err
	}
	all, err := floats(t, b.Y)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errEmpty(b.X, b.Y)
	}
	wpx, hpx := r.size()
	lo, hi := minMax(all)
	f := newFrame(wpx, hpx, lo, hi, true)

	s := svg.New(w)
	s.Start(wpx, hpx, fontAttr)
	f.draw(s, keys, b.X, b.Y)
	for i, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		sum, err := table.New(table.Floats(b.Y, vs)).Describe(b.Y)
		if err != nil {
			return err
		}
		blo, bhi := f.band(i, len(keys))
		cx := (blo + bhi) / 2
		half := (bhi - blo) * 3 / 10

		iqr := sum.Q3 - sum.Q1
		wlo, whi := sum.Q1, sum.Q3
		for _, v := range vs {
			if v >= sum.Q1-1.5*iqr && v < wlo {
				wlo = v
			}
			if v <= sum.Q3+1.5*iqr && v > whi {
				whi = v
			}
		}

		stroke := ";stroke:#333333;stroke-width:1"
		s.Line(cx, f.y(whi), cx, f.y(sum.Q3), "stroke:#333333")
		s.Line(cx, f.y(sum.Q1), cx, f.y(wlo), "stroke:#333333")
		s.Line(cx-half/2, f.y(whi), cx+half/2, f.y(whi), "stroke:#333333")
		s.Line(cx-half/2, f.y(wlo), cx+half/2, f.y(wlo), "stroke:#333333")
		s.Rect(cx-half, f.y(sum.Q3), 2*half, f.y(sum.Q1)-f.y(sum.Q3), fillStyle(set2[i%len(set2)])+stroke)
		s.Line(cx-half, f.y(sum.Median), cx+half, f.y(sum.Median), "stroke:#333333;stroke-width:2")
		for _, v := range vs {
			if v < sum.Q1-1.5*iqr || v > sum.Q3+1.5*iqr {
				s.Circle(cx, f.y(v), 2, "fill:#333333")
			}
		}
	}
	s.End()
	return nil
}

// Swarm draws one point per observation of Y for each distinct value
// of X, nudging points sideways within the band so they do not
// overlap.
type Swarm struct {
	X, Y string

	// Size is the point radius in pixels. Zero means 3.
	Size int
}

func (sw Swarm) render(r *Renderer, t *table.Table, w io.Writer) error {
	keys, vals, err := groupValues(t, sw.X, sw.Y)
	if err != nil {
		return err
	}
	all, err := floats(t, sw.Y)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errEmpty(sw.X, sw.Y)
	}
	wpx, hpx := r.size()
	lo, hi := minMax(all)
	f := newFrame(wpx, hpx, lo, hi, true)
	radius := orDefault(sw.Size, 3)

	s := svg.New(w)
	s.Start(wpx, hpx, fontAttr)
	f.draw(s, keys, sw.X, sw.Y)
	for i, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		blo, bhi := f.band(i, len(keys))
		cx := (blo + bhi) / 2
		sort.Float64s(vs)
		ys := make([]int, len(vs))
		for k, v := range vs {
			ys[k] = f.y(v)
		}
		style := fillStyle(set2[i%len(set2)])
		for k, off := range beeswarm(ys, radius, (bhi-blo)/2-radius) {
			s.Circle(cx+off, ys[k], radius, style)
		}
	}
	s.End()
	return nil
}

// beeswarm assigns a horizontal offset to each point so that no two
// circles of radius r overlap, preferring offsets near the band
// center. ys are pixel positions in value order. Offsets never exceed
// maxOff; when a row of points fills the band, overlap at the center
// is accepted.
func beeswarm(ys []int, r, maxOff int) []int {
	type pt struct{ x, y int }
	var placed []pt
	offs := make([]int, len(ys))
	d := 2 * r
	for i, y := range ys {
		cands := []int{0}
		for _, p := range placed {
			dy := y - p.y
			if dy < 0 {
				dy = -dy
			}
			if dy >= d {
				continue
			}
			dx := int(math.Sqrt(float64(d*d-dy*dy))) + 1
			cands = append(cands, p.x+dx, p.x-dx)
		}
		sort.Slice(cands, func(a, b int) bool {
			return abs(cands[a]) < abs(cands[b])
		})
		off := 0
		for _, c := range cands {
			if c < -maxOff || c > maxOff {
				continue
			}
			ok := true
			for _, p := range placed {
				dx, dy := c-p.x, y-p.y
				if dx*dx+dy*dy < d*d {
					ok = false
					break
				}
			}
			if ok {
				off = c
				break
			}
		}
		offs[i] = off
		placed = append(placed, pt{off, y})
	}
	return offs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Violin draws a kernel density estimate of Y for each distinct value
// of X, mirrored about the band center, with the interquartile range
// and median marked inside.
type Violin struct {
	X, Y string

	// Cut extends each density curve beyond the extreme observed
	// values by Cut bandwidths. Zero clips the curves at the data
	// extremes.
	Cut float64
}

func (v Violin) render(r *Renderer, t *table.Table, w io.Writer) error {
	keys, vals, err := groupValues(t, v.X, v.Y)
	if err != nil {
		return err
	}
	all, err := floats(t, v.Y)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errEmpty(v.X, v.Y)
	}

	// Estimate every curve first so the frame can span the
	// extended domains.
	type curve struct {
		ys, ds []float64
		sum    table.Summary
	}
	curves := make([]*curve, len(vals))
	lo, hi := minMax(all)
	for i, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		sum, err := table.New(table.Floats(v.Y, vs)).Describe(v.Y)
		if err != nil {
			return err
		}
		c := &curve{sum: sum}
		curves[i] = c
		sample := stats.Sample{Xs: vs}
		bw := stats.BandwidthScott(sample)
		if !(bw > 0) {
			continue
		}
		kde := stats.KDE{Sample: sample, Bandwidth: bw}
		clo, chi := sum.Min-v.Cut*bw, sum.Max+v.Cut*bw
		c.ys = vec.Linspace(clo, chi, 60)
		c.ds = vec.Map(kde.PDF, c.ys)
		if clo < lo {
			lo = clo
		}
		if chi > hi {
			hi = chi
		}
	}

	wpx, hpx := r.size()
	f := newFrame(wpx, hpx, lo, hi, true)
	s := svg.New(w)
	s.Start(wpx, hpx, fontAttr)
	f.draw(s, keys, v.X, v.Y)
	for i, c := range curves {
		if c == nil {
			continue
		}
		blo, bhi := f.band(i, len(keys))
		cx := (blo + bhi) / 2
		half := float64(bhi-blo) * 0.4
		if len(c.ds) > 0 {
			dmax := c.ds[0]
			for _, d := range c.ds {
				if d > dmax {
					dmax = d
				}
			}
			if dmax > 0 {
				xs := make([]int, 0, 2*len(c.ys))
				ys := make([]int, 0, 2*len(c.ys))
				for k := range c.ys {
					xs = append(xs, cx+int(c.ds[k]/dmax*half+0.5))
					ys = append(ys, f.y(c.ys[k]))
				}
				for k := len(c.ys) - 1; k >= 0; k-- {
					xs = append(xs, cx-int(c.ds[k]/dmax*half+0.5))
					ys = append(ys, f.y(c.ys[k]))
				}
				s.Polygon(xs, ys, fillStyle(set2[i%len(set2)])+";stroke:#333333;stroke-width:1")
			}
		}
		s.Line(cx, f.y(c.sum.Q1), cx, f.y(c.sum.Q3), "stroke:#333333;stroke-width:3")
		s.Circle(cx, f.y(c.sum.Median), 3, "fill:white;stroke:#333333")
	}
	s.End()
	return nil
}

// Count draws one bar per distinct value of a discrete column, sized
// by the number of rows holding that value.
type Count struct {
	X string
}

func (c Count) render(r *Renderer, t *table.Table, w io.Writer) error {
	gs, err := t.GroupBy(c.X)
	if err != nil {
		return err
	}
	if len(gs) == 0 {
		return errEmpty(c.X)
	}
	max := 0
	keys := make([]string, len(gs))
	for i, g := range gs {
		keys[i] = g.Key
		if g.Table.Len() > max {
			max = g.Table.Len()
		}
	}
	wpx, hpx := r.size()
	f := newFrame(wpx, hpx, 0, float64(max), false)

	s := svg.New(w)
	s.Start(wpx, hpx, fontAttr)
	f.draw(s, keys, c.X, "count")
	for i, g := range gs {
		blo, bhi := f.band(i, len(gs))
		cx := (blo + bhi) / 2
		half := (bhi - blo) * 2 / 5
		top := f.y(float64(g.Table.Len()))
		s.Rect(cx-half, top, 2*half, f.y(0)-top, fillStyle(set2[i%len(set2)])+";stroke:#333333;stroke-width:1")
	}
	s.End()
	return nil
}
