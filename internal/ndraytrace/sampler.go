package ndraytrace

import (
	"image/color"
	"math"
	"sync"
)

// Sampler returns the color seen through pixel (x,y).
// Implementations must be safe for concurrent use when Workers > 1.
type Sampler interface {
	Sample(x, y int) RGBA
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func(x, y int) RGBA

func (f SamplerFunc) Sample(x, y int) RGBA { return f(x, y) }

// PassStats describes one refinement pass.
type PassStats struct {
	Samples  int // Sample calls
	Flat     int // blocks filled with their corner average
	Retraced int // blocks refined with fresh samples
}

func (p PassStats) add(q PassStats) PassStats {
	return PassStats{p.Samples + q.Samples, p.Flat + q.Flat, p.Retraced + q.Retraced}
}

// SampleStats describes one rendered frame.
type SampleStats struct {
	Step   [3]int // coarse, middle and finest step in pixels
	Seed   int    // samples on the coarse grid
	Refine PassStats
	Fill   PassStats
}

func (s SampleStats) Total() int { return s.Seed + s.Refine.Samples + s.Fill.Samples }

// AdaptiveSampler renders a surface in three passes: a coarse grid of
// samples, then two refinements that only sample blocks whose corners
// disagree in color.
type AdaptiveSampler struct {
	// Threshold is the corner deviation at or above which a block is
	// re-sampled. Zero re-samples every block.
	Threshold Real
	// Workers splits each pass across goroutines; <= 1 stays on the caller.
	Workers int
}

func NewAdaptiveSampler() *AdaptiveSampler {
	return &AdaptiveSampler{Threshold: DeviationThreshold, Workers: 1}
}

// BlockSizes returns the coarse, middle and finest step for a surface.
func BlockSizes(width, height int) (s1, s2, s3 int) {
	k := imax(width, height) / BlockDivisor
	if k < 1 {
		k = 1
	}
	return 6 * k, 3 * k, k
}

type block struct {
	x, y int
	avg  RGBA
	dev  Real
}

// Render assigns a color to every pixel of surf.
func (a *AdaptiveSampler) Render(surf Surface, smp Sampler) SampleStats {
	s1, s2, s3 := BlockSizes(surf.Width(), surf.Height())
	st := SampleStats{Step: [3]int{s1, s2, s3}}
	st.Seed = a.seed(surf, smp, s1)
	// both refinements judge blocks by the seeded corners
	blocks := gatherBlocks(surf, s1)
	st.Refine = a.refine(surf, smp, blocks, s1, s2, false)
	st.Fill = a.refine(surf, smp, blocks, s1, s3, true)
	DebugLog("Frame samples: seed=%d refine=%d fill=%d (flat/retraced blocks %d/%d, %d/%d)",
		st.Seed, st.Refine.Samples, st.Fill.Samples,
		st.Refine.Flat, st.Refine.Retraced, st.Fill.Flat, st.Fill.Retraced)
	return st
}

// seed samples every step-th pixel, writing only that pixel.
func (a *AdaptiveSampler) seed(surf Surface, smp Sampler, step int) int {
	w, h := surf.Width(), surf.Height()
	rows := (h + step - 1) / step
	ps := a.fanOut(rows, func(lo, hi int) PassStats {
		var ps PassStats
		for r := lo; r < hi; r++ {
			y := r * step
			for x := 0; x < w; x += step {
				surf.WritePixel(x, y, smp.Sample(x, y))
				ps.Samples++
			}
		}
		return ps
	})
	return ps.Samples
}

// refine visits every step×step block and either writes the corner average
// or fresh samples at spacing sub. With fill set each sample covers its
// whole sub×sub cell, otherwise only its own pixel.
//
// Blocks only write inside their own step×step area, so concurrent blocks
// never touch the same pixel.
func (a *AdaptiveSampler) refine(surf Surface, smp Sampler, blocks []block, step, sub int, fill bool) PassStats {
	w, h := surf.Width(), surf.Height()
	return a.fanOut(len(blocks), func(lo, hi int) PassStats {
		var ps PassStats
		for _, b := range blocks[lo:hi] {
			flat := b.dev < a.Threshold
			if flat {
				ps.Flat++
			} else {
				ps.Retraced++
			}
			if Debug {
				if flat {
					logSample(Flat)
				} else {
					logSample(Retrace)
				}
			}
			for yo := b.y; yo < b.y+step && yo < h; yo += sub {
				for xo := b.x; xo < b.x+step && xo < w; xo += sub {
					c := b.avg
					if !flat {
						c = smp.Sample(xo, yo)
						ps.Samples++
					}
					if fill {
						fillCell(surf, xo, yo, sub, c)
					} else {
						surf.WritePixel(xo, yo, c)
					}
				}
			}
		}
		return ps
	})
}

func gatherBlocks(surf Surface, step int) []block {
	w, h := surf.Width(), surf.Height()
	blocks := make([]block, 0, ((w+step-1)/step)*((h+step-1)/step))
	corners := make([]color.RGBA, 0, 4)
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			corners = corners[:0]
			for _, p := range [4][2]int{{x, y}, {x + step, y}, {x, y + step}, {x + step, y + step}} {
				if c, ok := surf.ReadPixel(p[0], p[1]); ok {
					corners = append(corners, c)
				}
			}
			avg := averageColor(corners)
			blocks = append(blocks, block{x: x, y: y, avg: avg, dev: maxDeviation(corners, avg)})
		}
	}
	return blocks
}

func fillCell(surf Surface, x, y, size int, c RGBA) {
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			surf.WritePixel(x+i, y+j, c)
		}
	}
}

// averageColor is the channel-wise mean of the given colors.
func averageColor(cs []color.RGBA) RGBA {
	if len(cs) == 0 {
		return RGBA{}
	}
	var sum RGBA
	for _, c := range cs {
		sum.R += Real(c.R)
		sum.G += Real(c.G)
		sum.B += Real(c.B)
		sum.A += Real(c.A)
	}
	n := Real(len(cs))
	return RGBA{sum.R / n, sum.G / n, sum.B / n, sum.A / n}
}

// maxDeviation is the largest distance between a normalized corner color
// and the normalized average, both taken as 4-vectors.
func maxDeviation(cs []color.RGBA, avg RGBA) Real {
	navg := avg.vector().Norm()
	maxDev := math.Inf(-1)
	for _, c := range cs {
		dev := rgbaOf(c).vector().Norm().Dist(navg)
		if dev > maxDev {
			maxDev = dev
			if maxDev > DeviationEarlyExit {
				return maxDev
			}
		}
	}
	return maxDev
}

// fanOut splits [0,n) across a.Workers goroutines and sums their stats.
func (a *AdaptiveSampler) fanOut(n int, fn func(lo, hi int) PassStats) PassStats {
	workers := a.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return fn(0, n)
	}
	DebugLogOnce("Sampler fan-out: %d workers", workers)

	per, rem := n/workers, n%workers
	parts := make([]PassStats, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	lo := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		go func(wid, lo, hi int) {
			defer wg.Done()
			parts[wid] = fn(lo, hi)
		}(w, lo, lo+count)
		lo += count
	}
	wg.Wait()

	var total PassStats
	for _, p := range parts {
		total = total.add(p)
	}
	return total
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
