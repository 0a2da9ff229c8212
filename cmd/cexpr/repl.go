package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/zephyrtronium/cexpr"
)

const replHelp = `Enter a formula to make it current, or a command:
  :at <value>   evaluate the current formula at a complex value
  :glsl         print the GLSL expression of the current formula
  :frag         print a fragment shader for the current formula
  :png <file>   render the current formula to a PNG file
  :help         print this message
`

// repl reads formulas and commands until EOF. A formula that fails to parse
// is reported and leaves the current formula as it was.
func repl(cfg *config) error {
	rl, err := readline.New("f> ")
	if err != nil {
		return errors.Wrap(err, "starting line editor")
	}
	defer rl.Close()
	var cur *cexpr.Expr
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if err := command(os.Stdout, cfg, cur, line[1:]); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		e, err := cexpr.Parse(line, cfg.opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, describe(err))
			continue
		}
		cur = e
		klog.V(1).Infof("parsed %q as %v", line, e)
		if err := show(os.Stdout, cfg, e); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// command runs one REPL command against the current formula.
func command(w io.Writer, cfg *config, cur *cexpr.Expr, cmd string) error {
	verb, arg := cmd, ""
	if k := strings.IndexAny(cmd, " \t"); k >= 0 {
		verb, arg = cmd[:k], strings.TrimSpace(cmd[k+1:])
	}
	if verb == "help" {
		fmt.Fprint(w, replHelp)
		return nil
	}
	if cur == nil {
		return errors.New("no formula yet")
	}
	switch verb {
	case "at":
		z, err := cexpr.ParseComplex(arg)
		if err != nil {
			return err
		}
		r, err := cur.Eval(cfg.name, z)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "f(%v) = %v\n", z, r)
	case "glsl":
		src, err := cur.GLSL(cfg.name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, src)
	case "frag":
		c := *cfg
		c.echo, c.glsl, c.frag, c.at = false, false, true, nil
		return show(w, &c, cur)
	case "png":
		if arg == "" {
			return errors.New("usage: :png <file>")
		}
		return render(cfg, cur, arg)
	default:
		return errors.Errorf("unknown command %q (try :help)", verb)
	}
	return nil
}

// describe formats a parse error with a caret under its position.
func describe(err error) string {
	var ie cexpr.InputError
	if !errors.As(err, &ie) {
		return err.Error()
	}
	pad := strings.Repeat(" ", len("f> ")+ie.Pos()-1)
	return pad + "^\n" + err.Error()
}
