// Package plot renders complex functions by domain colouring on the CPU.
package plot

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/cexpr"
)

// View is a rectangle of the complex plane.
type View struct {
	Min, Max cexpr.Complex
}

// Square returns the view of the square centred at c with half-width r.
func Square(c cexpr.Complex, r float64) View {
	d := cexpr.Complex{Re: r, Im: r}
	return View{Min: c.Sub(d), Max: c.Add(d)}
}

// At returns the point of v at pixel (x, y) of a w×h image. Rows run from
// the top of the view downward.
func (v View) At(x, y, w, h int) cexpr.Complex {
	re := v.Min.Re + float64(x)/float64(w)*(v.Max.Re-v.Min.Re)
	im := v.Min.Im + (1-float64(y)/float64(h))*(v.Max.Im-v.Min.Im)
	return cexpr.Complex{Re: re, Im: im}
}

// Color returns the colour of a function value. Lightness is the fractional
// part of log2|w|, so it cycles with each doubling of the modulus; hue is the
// fractional part of arg(w)/2π. Components are in [0, 1]. Non-finite values
// are black.
func Color(w cexpr.Complex) mgl32.Vec3 {
	light := frac(math.Log2(w.Abs()))
	hue := frac(w.Arg() / (2 * math.Pi))
	if math.IsNaN(light) || math.IsNaN(hue) || math.IsInf(light, 0) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{
		float32(light * math.Min(2*hue, 1)),
		float32(light * hue),
		0,
	}
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

// NRGBA converts a colour with components in [0, 1] to an opaque pixel.
func NRGBA(c mgl32.Vec3) color.NRGBA {
	return color.NRGBA{
		R: uint8(255 * mgl32.Clamp(c.X(), 0, 1)),
		G: uint8(255 * mgl32.Clamp(c.Y(), 0, 1)),
		B: uint8(255 * mgl32.Clamp(c.Z(), 0, 1)),
		A: 255,
	}
}

// Render evaluates f once per pixel of a w×h image of v and colours each
// pixel with Color. Rows are computed concurrently, so f must be safe for
// concurrent use, as functions from (*cexpr.Expr).Func are. If ctx is
// cancelled before all rows are done, the result is nil and ctx's error.
// Both dimensions must be positive.
func Render(ctx context.Context, f func(cexpr.Complex) cexpr.Complex, v View, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("image size %dx%d is not positive", w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rows := make(chan int)
	var wg sync.WaitGroup
	n := runtime.GOMAXPROCS(0)
	if n > h {
		n = h
	}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < w; x++ {
					img.SetNRGBA(x, y, NRGBA(Color(f(v.At(x, y, w, h)))))
				}
			}
		}()
	}
	var err error
feed:
	for y := 0; y < h; y++ {
		select {
		case rows <- y:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(rows)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return img, nil
}
