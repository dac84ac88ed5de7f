package stream

// Fragment composition. Each operation builds its complete output in
// w.frag and hands it to the sink once, after validation.

func (w *Writer) raw(s string) {
	w.frag = append(w.frag, s...)
}

func (w *Writer) colored(attr ColorAttr, s string) {
	if w.opts.colors == nil {
		w.raw(s)
		return
	}
	w.raw(w.opts.colors.apply(attr, s))
}

// content applies the transform to a name or payload.
func (w *Writer) content(s string) string {
	if w.opts.transform == nil {
		return s
	}
	return w.opts.transform(s)
}

// newline starts a line indented to depth. The first token of the
// stream gets neither.
func (w *Writer) newline(depth int) {
	if !w.opts.pretty || !w.state.started {
		return
	}
	w.frag = append(w.frag, '\n')
	for range depth {
		w.raw(w.opts.indent)
	}
}

// separator precedes every new element: a comma when the container
// already has one, then the line break.
func (w *Writer) separator() {
	if w.state.hasElement {
		w.colored(PunctColor, ",")
	}
	w.newline(w.state.Depth())
}

func (w *Writer) name(name string) {
	w.colored(NameColor, `"`+w.content(name)+`"`)
	w.colored(PunctColor, ":")
	w.raw(" ")
}

func (w *Writer) opener(c Context) {
	if c == Object {
		w.colored(PunctColor, "{")
		return
	}
	w.colored(PunctColor, "[")
}

// closer closes the container at depth, aligned with its opener.
func (w *Writer) closer(c Context, depth int) {
	w.newline(depth - 1)
	if c == Object {
		w.colored(PunctColor, "}")
		return
	}
	w.colored(PunctColor, "]")
}

func (w *Writer) value(kind Kind, text string) {
	switch kind {
	case String:
		w.colored(StringColor, `"`+w.content(text)+`"`)
	case Number:
		w.colored(NumberColor, w.content(text))
	case True:
		w.colored(BoolColor, "true")
	case False:
		w.colored(BoolColor, "false")
	case Null:
		w.colored(NullColor, "null")
	}
}
