package cexpr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	unaryopt struct {
		sym string
		op  UnaryOp
	}
	disableopt string
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// binds is the unary symbol table set by options. It is nil if no option
	// has changed the default table. Options always copy it before changing
	// it, since presets share it.
	binds []unsym
	// unary is the prepared form of binds. It is nil if binds has changed
	// since it was last prepared.
	unary *unarytable
}

// table returns the unary table to match against, preparing it if needed.
func (p *parsectx) table() *unarytable {
	if p.unary == nil {
		if p.binds == nil {
			p.unary = globalunary
		} else {
			p.unary = newUnaryTable(p.binds)
		}
	}
	return p.unary
}

// editbinds returns a private copy of the unary symbol table.
func (p *parsectx) editbinds() []unsym {
	v := p.binds
	if v == nil {
		v = defaultUnary
	}
	p.unary = nil
	return append([]unsym(nil), v...)
}

// ParseUnary binds a unary operator symbol for parsing, e.g. "ln" for OpLog.
// If the symbol is already bound, its operator is replaced. Panics if sym is
// empty or op is not a valid operator.
func ParseUnary(sym string, op UnaryOp) ParseOption {
	if sym == "" {
		panic("cexpr: empty operator symbol")
	}
	if op <= unopNone || op > OpCos {
		panic("cexpr: invalid unary operator " + op.String())
	}
	return &unaryopt{sym, op}
}

func (o *unaryopt) parseOption(p parsectx) parsectx {
	v := p.editbinds()
	for k := range v {
		if v[k].sym == o.sym {
			v[k].op = o.op
			p.binds = v
			return p
		}
	}
	p.binds = append(v, unsym{o.sym, o.op})
	return p
}

// DisableUnary removes a unary operator symbol from parsing. Disabling a
// symbol that is not bound has no effect.
func DisableUnary(sym string) ParseOption {
	return disableopt(sym)
}

func (o disableopt) parseOption(p parsectx) parsectx {
	v := p.editbinds()
	r := v[:0]
	for _, u := range v {
		if u.sym != string(o) {
			r = append(r, u)
		}
	}
	p.binds = r
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.table()
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.binds != nil {
		panic("cexpr: preset applied to non-default parse config")
	}
	p.binds = o.binds
	p.unary = o.unary
	return p
}
