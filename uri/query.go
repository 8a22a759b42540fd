package uri

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/ioutil"
	"github.com/ghettovoice/uriparse/internal/util"
)

// Parameter is a single query parameter.
type Parameter struct {
	Name  string
	Value Value
}

// Param returns a parameter with a scalar value.
func Param(name, value string) Parameter {
	return Parameter{Name: name, Value: Scalar(value)}
}

// Equal reports whether val is a parameter with the same name and value.
func (p Parameter) Equal(val any) bool {
	var other Parameter
	switch v := val.(type) {
	case Parameter:
		other = v
	case *Parameter:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p.Name == other.Name && valuesEqual(p.Value, other.Value)
}

// Query is an ordered, immutable collection of parameters.
// Parameters keep the order of the first occurrence of their names.
type Query struct {
	params []Parameter
}

// NewQuery returns a query of the given parameters in order.
func NewQuery(params ...Parameter) Query {
	return Query{params: slices.Clone(params)}
}

// Params returns a copy of the parameters.
func (q Query) Params() []Parameter { return slices.Clone(q.params) }

// All iterates over parameter names and values in order.
func (q Query) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range q.params {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Len returns the number of parameters.
func (q Query) Len() int { return len(q.params) }

// Get returns the value of the first parameter with the name.
func (q Query) Get(name string) (Value, bool) {
	for _, p := range q.params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Has reports whether a parameter with the name exists.
func (q Query) Has(name string) bool {
	_, ok := q.Get(name)
	return ok
}

// Contains reports whether any parameter satisfies the predicate.
func (q Query) Contains(pred func(Parameter) bool) bool {
	return slices.ContainsFunc(q.params, pred)
}

// With returns a copy of the query with the parameter appended.
func (q Query) With(p Parameter) Query {
	params := make([]Parameter, 0, len(q.params)+1)
	params = append(params, q.params...)
	return Query{params: append(params, p)}
}

// Without returns a copy of the query with parameters equal to p removed.
func (q Query) Without(p Parameter) Query {
	return Query{params: slices.DeleteFunc(slices.Clone(q.params), func(o Parameter) bool { return o.Equal(p) })}
}

func shouldEscapeParamChar(c byte) bool {
	switch c {
	case '&', '=', '+', ';', '[', ']', '#':
		return true
	}
	return !grammar.IsQueryChar(c)
}

// RenderTo writes the query without the leading "?".
// Array values are flattened to "name[key]=value" pairs, list keys are written as "[]".
func (q Query) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	first := true
	for _, p := range q.params {
		renderParam(cw, grammar.EscapeAll(p.Name, shouldEscapeParamChar), p.Value, &first)
	}
	return errtrace.Wrap2(cw.Result())
}

func renderParam(cw *ioutil.CountingWriter, name string, v Value, first *bool) {
	switch v := v.(type) {
	case Array:
		for i, e := range v {
			key := ""
			if e.Key != strconv.Itoa(i) {
				key = grammar.EscapeAll(e.Key, shouldEscapeParamChar)
			}
			renderParam(cw, name+"["+key+"]", e.Value, first)
		}
	default:
		if !*first {
			cw.WriteString("&")
		}
		*first = false
		cw.WriteString(name)
		cw.WriteString("=")
		if v != nil {
			cw.WriteString(grammar.EscapeAll(v.String(), shouldEscapeParamChar))
		}
	}
}

// Render returns the string representation of the query.
func (q Query) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	q.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (q Query) String() string { return q.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the Query.
func (q Query) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, q.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(q.String()))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, q.String())
			return
		}
		type hideMethods Query
		type Query hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Query(q))
	}
}

// Equal reports whether val is a query with equal parameters in the same order.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(q.params, other.params, func(p1, p2 Parameter) bool { return p1.Equal(p2) })
}

// queryBuilder accumulates parameters during a single parse.
// The name index keeps lookups linear in the query length.
type queryBuilder struct {
	params []Parameter
	index  map[string]int
}

// put stores the value under the name, or replaces the stored value
// with merge(stored, v) keeping the position of the first occurrence.
func (b *queryBuilder) put(name string, v Value, merge func(stored, v Value) Value) {
	if i, ok := b.index[name]; ok {
		if merge != nil {
			v = merge(b.params[i].Value, v)
		}
		b.params[i] = Parameter{Name: name, Value: v}
		return
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[name] = len(b.params)
	b.params = append(b.params, Parameter{Name: name, Value: v})
}

func (b *queryBuilder) query() Query {
	q := Query{params: b.params}
	b.params, b.index = nil, nil
	return q
}

func joinComma(stored, v Value) Value {
	return Scalar(stored.String() + "," + v.String())
}

// parseQuery decomposes the query string, given without the leading "?".
func parseQuery(s string, mode QueryMode) (Query, error) {
	if err := mode.Validate(); err != nil {
		return Query{}, errtrace.Wrap(err)
	}

	var b queryBuilder
	if !mode.usesPattern() {
		seps := "&"
		if mode&ModeSemicolonDelimiter != 0 {
			seps = "&;"
		}
		for _, pair := range strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(seps, r) }) {
			name, val, _ := strings.Cut(pair, "=")
			name = grammar.FormUnescape(name)
			if name == "" {
				continue
			}
			b.put(name, Scalar(grammar.FormUnescape(val)), nil)
		}
		return b.query(), nil
	}

	array := mode&ModeDuplicateArray != 0
	for _, pm := range grammar.MatchQueryParams(s) {
		name := grammar.FormUnescape(pm.Name)
		var v Value = Scalar(grammar.FormUnescape(pm.Value))
		if array {
			if base, keys, ok := grammar.SplitBrackets(name); ok {
				name, v = base, nestValue(keys, v)
			}
			b.put(name, v, Merge)
		} else {
			b.put(name, v, joinComma)
		}
	}
	return b.query(), nil
}

// ParseQuery parses a query string, given without the leading "?", with the mode.
func ParseQuery(s string, mode QueryMode) (Query, error) {
	return errtrace.Wrap2(parseQuery(s, mode))
}
