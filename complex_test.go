package cexpr_test

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/cexpr"
)

// near reports whether z and w differ by at most tol relative to their size,
// or absolutely when they are small.
func near(z, w cexpr.Complex, tol float64) bool {
	d := z.Sub(w).Abs()
	s := math.Max(1, math.Max(z.Abs(), w.Abs()))
	return d <= tol*s
}

func randComplex(rng *rand.Rand, scale float64) cexpr.Complex {
	return cexpr.Complex{Re: scale * (2*rng.Float64() - 1), Im: scale * (2*rng.Float64() - 1)}
}

func TestComplexString(t *testing.T) {
	cases := []struct {
		name string
		z    cexpr.Complex
		s    string
	}{
		{"zero", cexpr.Complex{}, "0"},
		{"real", cexpr.Complex{Re: 1.5}, "1.5"},
		{"negreal", cexpr.Complex{Re: -2}, "-2"},
		{"imag", cexpr.Complex{Im: 2}, "2i"},
		{"negimag", cexpr.Complex{Im: -0.25}, "-0.25i"},
		{"both", cexpr.Complex{Re: 1, Im: 2}, "1+2i"},
		{"negboth", cexpr.Complex{Re: -1, Im: -2}, "-1+-2i"},
		{"big", cexpr.Complex{Re: 1e21}, "1000000000000000000000"},
		{"small", cexpr.Complex{Im: 1e-7}, "0.0000001i"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if s := c.z.String(); s != c.s {
				t.Errorf("wrong string for %#v: want %q, got %q", c.z, c.s, s)
			}
		})
	}
}

func TestParseComplex(t *testing.T) {
	cases := []struct {
		name string
		src  string
		z    cexpr.Complex
	}{
		{"int", "1", cexpr.Complex{Re: 1}},
		{"real", "1.5", cexpr.Complex{Re: 1.5}},
		{"neg", "-3", cexpr.Complex{Re: -3}},
		{"imag", "2i", cexpr.Complex{Im: 2}},
		{"negimag", "-2.5i", cexpr.Complex{Im: -2.5}},
		{"unit", "i", cexpr.Complex{Im: 1}},
		{"both", "1+2i", cexpr.Complex{Re: 1, Im: 2}},
		{"spaces", "1 + 2i", cexpr.Complex{Re: 1, Im: 2}},
		{"tabs", "1\t+\t2i", cexpr.Complex{Re: 1, Im: 2}},
		{"negim", "1+-2i", cexpr.Complex{Re: 1, Im: -2}},
		{"negboth", "-1.25+-0.5i", cexpr.Complex{Re: -1.25, Im: -0.5}},
		{"overflow", "1" + strings.Repeat("0", 400), cexpr.Complex{Re: math.Inf(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, err := cexpr.ParseComplex(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !z.Equal(c.z) {
				t.Errorf("wrong value for %q: want %v, got %v", c.src, c.z, z)
			}
		})
	}
}

func TestParseComplexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"space", " "},
		{"leading", " 1"},
		{"trailing", "1 "},
		{"dot", "1."},
		{"leaddot", ".5"},
		{"exponent", "1e5"},
		{"plus", "+1"},
		{"doubleneg", "--1"},
		{"nolhs", "+2i"},
		{"norhs", "1+"},
		{"realrhs", "1+2"},
		{"imaglhs", "2i+1"},
		{"minus", "1-2i"},
		{"negunit", "-i"},
		{"unitsum", "1+i"},
		{"letter", "z"},
		{"double", "1+2i+3i"},
		{"inf", "Inf"},
		{"nan", "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, err := cexpr.ParseComplex(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, z)
			}
			var le *cexpr.LiteralError
			if !errors.As(err, &le) {
				t.Fatalf("wrong error type %T: %v", err, err)
			}
			if le.Text != c.src {
				t.Errorf("wrong error text: want %q, got %q", c.src, le.Text)
			}
		})
	}
}

func TestComplexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vals := []float64{0, 1, -1, 0.1, 1e-300, -1e300, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Pi}
	for i := 0; i < 1000; i++ {
		vals = append(vals, rng.NormFloat64()*math.Pow(10, float64(rng.Intn(40)-20)))
	}
	for i := 0; i < len(vals); i++ {
		z := cexpr.Complex{Re: vals[i], Im: vals[(i*7+3)%len(vals)]}
		s := z.String()
		w, err := cexpr.ParseComplex(s)
		if err != nil {
			t.Fatalf("%#v formatted as %q, which failed to parse: %v", z, s, err)
		}
		if !w.Equal(z) {
			t.Errorf("%#v formatted as %q, which parsed as %#v", z, s, w)
		}
	}
}

func TestArithmeticIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		z := randComplex(rng, 100)
		w := randComplex(rng, 100)
		if r := z.Add(w).Sub(w); !near(r, z, 1e-12) {
			t.Errorf("(%v + %v) - %[2]v = %v", z, w, r)
		}
		if r := z.Mul(w).Div(w); !near(r, z, 1e-12) {
			t.Errorf("(%v * %v) / %[2]v = %v", z, w, r)
		}
		if r := z.Conj().Conj(); r != z {
			t.Errorf("conj(conj(%v)) = %v", z, r)
		}
		if r := z.Neg().Neg(); r != z {
			t.Errorf("-(-(%v)) = %v", z, r)
		}
		if r := z.Add(w); r != w.Add(z) {
			t.Errorf("%v + %v is not commutative", z, w)
		}
	}
}

func TestKnownValues(t *testing.T) {
	i := cexpr.Complex{Im: 1}
	one := cexpr.Complex{Re: 1}
	cases := []struct {
		name string
		got  cexpr.Complex
		want cexpr.Complex
	}{
		{"i*i", i.Mul(i), cexpr.Complex{Re: -1}},
		{"1/i", one.Div(i), cexpr.Complex{Im: -1}},
		{"log(-1)", one.Neg().Log(), cexpr.Complex{Im: math.Pi}},
		{"log(i)", i.Log(), cexpr.Complex{Im: math.Pi / 2}},
		{"exp(iπ)", cexpr.Complex{Im: math.Pi}.Exp(), cexpr.Complex{Re: -1}},
		{"i^i", i.Pow(i), cexpr.Complex{Re: math.Exp(-math.Pi / 2)}},
		{"i^2", i.Pow(cexpr.Complex{Re: 2}), cexpr.Complex{Re: -1}},
		{"sin(0)", cexpr.Complex{}.Sin(), cexpr.Complex{}},
		{"cos(0)", cexpr.Complex{}.Cos(), one},
		{"sin(π/2)", cexpr.Complex{Re: math.Pi / 2}.Sin(), one},
		{"sin(i)", i.Sin(), cexpr.Complex{Im: math.Sinh(1)}},
		{"cos(i)", i.Cos(), cexpr.Complex{Re: math.Cosh(1)}},
		{"polar", cexpr.FromPolar(2, math.Pi/2), cexpr.Complex{Im: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !near(c.got, c.want, 1e-15) {
				t.Errorf("want %v, got %v", c.want, c.got)
			}
		})
	}
}

func TestAbsArg(t *testing.T) {
	z := cexpr.Complex{Re: 3, Im: -4}
	if a := z.Abs(); a != 5 {
		t.Errorf("|3-4i| = %g", a)
	}
	if a := (cexpr.Complex{Re: -1}).Arg(); a != math.Pi {
		t.Errorf("arg(-1) = %g, not in (-π, π]", a)
	}
	if a := (cexpr.Complex{Im: -1}).Arg(); a != -math.Pi/2 {
		t.Errorf("arg(-i) = %g", a)
	}
}

func TestLogExpInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		z := randComplex(rng, 50)
		if z.Abs() == 0 {
			continue
		}
		if r := z.Log().Exp(); !near(r, z, 1e-13) {
			t.Errorf("exp(log(%v)) = %v", z, r)
		}
		// Pythagorean identity holds away from huge imaginary parts.
		s, c := z.Sin(), z.Cos()
		if z.Im > -5 && z.Im < 5 {
			if r := s.Mul(s).Add(c.Mul(c)); !near(r, cexpr.Complex{Re: 1}, 1e-10) {
				t.Errorf("sin²(%v) + cos²(%[1]v) = %v", z, r)
			}
		}
	}
}

func TestPowIsLogExp(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		z := randComplex(rng, 4)
		w := randComplex(rng, 4)
		want := w.Mul(z.Log()).Exp()
		if r := z.Pow(w); !r.Equal(want) {
			t.Errorf("%v^%v = %v, want exp(%[2]v log %[1]v) = %[4]v", z, w, r, want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	r := cexpr.Complex{Re: 1}.Div(cexpr.Complex{})
	if !math.IsInf(r.Re, 0) && !math.IsNaN(r.Re) {
		t.Errorf("1/0 has finite real part: %v", r)
	}
	r = cexpr.Complex{}.Div(cexpr.Complex{})
	if !math.IsNaN(r.Re) || !math.IsNaN(r.Im) {
		t.Errorf("0/0 is not NaN: %v", r)
	}
}

func TestLogZero(t *testing.T) {
	// Only the real part is asserted; the angle of zero follows math.Atan2
	// and is not a promise.
	r := cexpr.Complex{}.Log()
	if !math.IsInf(r.Re, -1) {
		t.Errorf("log(0) has real part %g, want -Inf", r.Re)
	}
	// Zero to a power must not panic.
	_ = cexpr.Complex{}.Pow(cexpr.Complex{Re: 2})
}

// oracle computes real functions at high precision.
const oraclePrec = 256

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(oraclePrec).SetFloat64(x)
}

func relerr(got float64, want *big.Float) float64 {
	w, _ := want.Float64()
	if w == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-w) / math.Abs(w)
}

func TestRealAxisOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		x := 40 * (2*rng.Float64() - 1)
		got := cexpr.Complex{Re: x}.Exp()
		want := bigfloat.Exp(bf(0), bf(x))
		if got.Im != 0 || relerr(got.Re, want) > 1e-15 {
			t.Errorf("exp(%g): want %.17g, got %v", x, want, got)
		}

		y := math.Exp(20 * (2*rng.Float64() - 1))
		got = cexpr.Complex{Re: y}.Log()
		want = bigfloat.Log(bf(0), bf(y))
		if got.Im != 0 || relerr(got.Re, want) > 1e-15 {
			t.Errorf("log(%g): want %.17g, got %v", y, want, got)
		}

		b := 10 * rng.Float64()
		e := 6 * (2*rng.Float64() - 1)
		if b == 0 {
			continue
		}
		got = cexpr.Complex{Re: b}.Pow(cexpr.Complex{Re: e})
		want = bigfloat.Pow(bf(0), bf(b), bf(e))
		if got.Im != 0 || relerr(got.Re, want) > 1e-13 {
			t.Errorf("%g^%g: want %.17g, got %v", b, e, want, got)
		}
	}
}
