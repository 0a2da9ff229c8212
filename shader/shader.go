// Package shader holds the GLSL side of formula rendering: definitions of the
// complex helper functions that cexpr's generated code calls, and a WebGL
// program that colours each pixel by the value of a formula there.
package shader

import (
	_ "embed"
	"regexp"
	"strings"
	"text/template"

	"github.com/zephyrtronium/cexpr"
)

// Prelude defines c_mul, c_div, c_log, c_exp, c_pow, c_sin, and c_cos over
// vec2 with the same semantics as the corresponding cexpr.Complex methods.
//
//go:embed complex.glsl
var Prelude string

// Vertex is a vertex shader that passes a full-screen quad through.
//
//go:embed plot.vert
var Vertex string

//go:embed plot.frag
var fragmentText string

var fragment = template.Must(template.New("plot.frag").Parse(fragmentText))

// Fragment returns a fragment shader colouring each pixel by the value of
// expr, a GLSL vec2 expression in the variable cexpr.GLSLInput such as the
// result of (*cexpr.Expr).GLSL. Lightness cycles with powers of two of the
// modulus and hue with the argument. The shader reads the uniforms
// uViewportSize, uScale, and uTranslation.
func Fragment(expr string) (string, error) {
	var b strings.Builder
	data := struct {
		Prelude, Input, Expr string
	}{Prelude, cexpr.GLSLInput, expr}
	if err := fragment.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var helperre = regexp.MustCompile(`(?m)^vec2 (c_\w+)\(`)

// Helpers returns the names of the functions that Prelude defines.
func Helpers() []string {
	m := helperre.FindAllStringSubmatch(Prelude, -1)
	r := make([]string, len(m))
	for k, v := range m {
		r[k] = v[1]
	}
	return r
}
