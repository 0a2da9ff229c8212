package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/zephyrtronium/cexpr"
	"github.com/zephyrtronium/cexpr/plot"
	"github.com/zephyrtronium/cexpr/shader"
)

// config is everything set by flags.
type config struct {
	name    string
	at      []cexpr.Complex
	opts    []cexpr.ParseOption
	echo    bool
	glsl    bool
	frag    bool
	png     string
	size    int
	center  cexpr.Complex
	radius  float64
	verbose int
}

var unaryNames = map[string]cexpr.UnaryOp{
	"neg": cexpr.OpNeg,
	"log": cexpr.OpLog,
	"exp": cexpr.OpExp,
	"sin": cexpr.OpSin,
	"cos": cexpr.OpCos,
}

func main() {
	var cfg config
	addat := func(s string) error {
		z, err := cexpr.ParseComplex(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrap(err, "evaluation point")
		}
		cfg.at = append(cfg.at, z)
		return nil
	}
	addunary := func(s string) error {
		opt, err := unaryFlag(s)
		if err != nil {
			return err
		}
		cfg.opts = append(cfg.opts, opt)
		return nil
	}
	var center string
	flag.StringVar(&cfg.name, "var", "z", "bound variable of formulas")
	flag.Func("at", "complex point at which to evaluate formulas (any number of times)", addat)
	flag.Func("unary", "symbol=op prefix operator binding, or symbol= to remove one (any number of times)", addunary)
	flag.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	flag.BoolVar(&cfg.glsl, "glsl", false, "print the GLSL expression for each formula")
	flag.BoolVar(&cfg.frag, "frag", false, "print a complete fragment shader for each formula")
	flag.StringVar(&cfg.png, "png", "", "render the first formula to this PNG file")
	flag.IntVar(&cfg.size, "size", 512, "width and height of rendered images in pixels")
	flag.StringVar(&center, "center", "0", "centre of rendered images")
	flag.Float64Var(&cfg.radius, "r", 3, "half-width of rendered images")
	flag.IntVar(&cfg.verbose, "verbose", 0, "log verbosity")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	flag.Parse()
	fset.Set("v", strconv.Itoa(cfg.verbose))
	if cfg.size <= 0 {
		klog.Fatalf("image size (%d) must be positive", cfg.size)
	}
	c, err := cexpr.ParseComplex(center)
	if err != nil {
		klog.Fatal(errors.Wrap(err, "image centre"))
	}
	cfg.center = c
	if len(cfg.opts) > 0 {
		cfg.opts = []cexpr.ParseOption{cexpr.ParsingPreset(cfg.opts...)}
	}

	if flag.NArg() == 0 {
		if err := repl(&cfg); err != nil {
			klog.Fatal(err)
		}
		return
	}
	var exprs []*cexpr.Expr
	for _, arg := range flag.Args() {
		e, err := cexpr.Parse(arg, cfg.opts...)
		if err != nil {
			klog.Fatalf("parsing %q: %v", arg, err)
		}
		exprs = append(exprs, e)
	}
	for _, e := range exprs {
		if err := show(os.Stdout, &cfg, e); err != nil {
			klog.Fatal(err)
		}
	}
	if cfg.png != "" {
		if err := render(&cfg, exprs[0], cfg.png); err != nil {
			klog.Fatal(err)
		}
	}
}

// unaryFlag parses a -unary value, "symbol=op" to bind a prefix operator or
// "symbol=" to remove one.
func unaryFlag(s string) (cexpr.ParseOption, error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return nil, errors.Errorf(`operator definitions must be "symbol=op", not %q`, s)
	}
	sym, name := strings.TrimSpace(d[0]), strings.TrimSpace(d[1])
	if sym == "" {
		return nil, errors.Errorf("empty operator symbol in %q", s)
	}
	if name == "" {
		return cexpr.DisableUnary(sym), nil
	}
	op, ok := unaryNames[name]
	if !ok {
		return nil, errors.Errorf("unknown operator %q (want one of neg, log, exp, sin, cos)", name)
	}
	return cexpr.ParseUnary(sym, op), nil
}

// show prints everything requested about a formula.
func show(w io.Writer, cfg *config, e *cexpr.Expr) error {
	if cfg.echo {
		fmt.Fprintln(w, e)
	}
	if cfg.glsl || cfg.frag {
		expr, err := e.GLSL(cfg.name)
		if err != nil {
			return err
		}
		if cfg.glsl {
			fmt.Fprintln(w, expr)
		}
		if cfg.frag {
			src, err := shader.Fragment(expr)
			if err != nil {
				return errors.Wrap(err, "generating fragment shader")
			}
			fmt.Fprint(w, src)
		}
	}
	if len(cfg.at) == 0 {
		return nil
	}
	f, err := e.Func(cfg.name)
	if err != nil {
		return err
	}
	for _, z := range cfg.at {
		fmt.Fprintf(w, "f(%v) = %v\n", z, f(z))
	}
	return nil
}

// render writes a domain colouring of e to the named PNG file.
func render(cfg *config, e *cexpr.Expr, name string) error {
	f, err := e.Func(cfg.name)
	if err != nil {
		return err
	}
	start := time.Now()
	img, err := plot.Render(context.Background(), f, plot.Square(cfg.center, cfg.radius), cfg.size, cfg.size)
	if err != nil {
		return errors.Wrap(err, "rendering")
	}
	klog.V(2).Infof("rendered %v at %dx%d in %v", e, cfg.size, cfg.size, time.Since(start))
	out, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "creating %s", name)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	return errors.Wrapf(out.Close(), "closing %s", name)
}
