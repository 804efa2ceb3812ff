package cdhit

import (
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindAbsent
)

// Value is a single option value. The zero Value is an empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// String returns a Value emitted verbatim, including the empty string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns a Value emitted in decimal.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a Value emitted as the shortest decimal that round-trips,
// never in exponent form.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a Value emitted as "1" or "0", the form CD-HIT switches take.
// This differs from Python's str(True), which would give "True".
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Absent returns the Value of a flag that takes no argument.
func Absent() Value { return Value{kind: KindAbsent} }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Token returns the command-line token for v. ok is false only for Absent.
func (v Value) Token() (token string, ok bool) {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64), true
	case KindBool:
		if v.b {
			return "1", true
		}
		return "0", true
	case KindAbsent:
		return "", false
	default:
		return v.s, true
	}
}

func (v Value) String() string {
	if tok, ok := v.Token(); ok {
		return tok
	}
	return "<absent>"
}

// Option is one flag/value pair.
type Option struct {
	Flag  string
	Value Value
}

// Options is an insertion-ordered set of command-line options. The zero
// value is ready to use and a nil *Options behaves as empty.
type Options struct {
	entries []Option
	index   map[string]int
}

// NewOptions returns Options holding opts in order. A repeated flag keeps
// its first position and its last value.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		o.Set(opt.Flag, opt.Value)
	}
	return o
}

// Set assigns v to flag. An existing flag keeps its position.
func (o *Options) Set(flag string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[flag]; ok {
		o.entries[i].Value = v
		return
	}
	o.index[flag] = len(o.entries)
	o.entries = append(o.entries, Option{Flag: flag, Value: v})
}

// Get returns the value of flag.
func (o *Options) Get(flag string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[flag]
	if !ok {
		return Value{}, false
	}
	return o.entries[i].Value, true
}

// Len returns the number of flags.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Entries returns a copy of the options in order.
func (o *Options) Entries() []Option {
	if o == nil {
		return nil
	}
	out := make([]Option, len(o.entries))
	copy(out, o.entries)
	return out
}

// Merge returns a new Options with other applied over o: flags already in o
// keep their position and take the value from other, new flags are appended.
func (o *Options) Merge(other *Options) *Options {
	merged := NewOptions(o.Entries()...)
	for _, opt := range other.Entries() {
		merged.Set(opt.Flag, opt.Value)
	}
	return merged
}

// Args flattens the options into alternating flag and value tokens.
// Absent values contribute only their flag.
func (o *Options) Args() []string {
	if o.Len() == 0 {
		return nil
	}
	args := make([]string, 0, 2*len(o.entries))
	for _, opt := range o.entries {
		args = append(args, opt.Flag)
		if tok, ok := opt.Value.Token(); ok {
			args = append(args, tok)
		}
	}
	return args
}
