package uri

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/constraints"
	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/ioutil"
	"github.com/ghettovoice/uriparse/internal/util"
)

// Path is an ordered sequence of path segments.
// Segments are kept as written, percent-encoded octets included.
// Rooted tells whether the path started with "/".
type Path struct {
	segs   []string
	rooted bool
}

// NewPath builds a path from segments. A segment with "/", "?" or "#" fails with [ErrInvalidSegment].
func NewPath(rooted bool, segments ...string) (Path, error) {
	for _, seg := range segments {
		if err := validateSegment(seg); err != nil {
			return Path{}, errtrace.Wrap(err)
		}
	}
	return Path{segs: slices.Clone(segments), rooted: rooted}, nil
}

func validateSegment(seg string) error {
	for i := 0; i < len(seg); i++ {
		if !grammar.IsSegmentSafe(seg[i]) {
			return errtrace.Wrap(newInvalidSegmentErr("%q contains %q", seg, seg[i]))
		}
	}
	return nil
}

// ParsePath splits a path string into segments.
// One leading "/" is stripped and the rest is split on "/".
// A trailing "/" yields a trailing empty segment, the empty string yields no segments.
func ParsePath[T constraints.Byteseq](s T) (Path, error) {
	return errtrace.Wrap2(parsePath(string(s)))
}

func parsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	rooted := strings.HasPrefix(s, "/")
	if rooted {
		s = s[1:]
	}
	if strings.ContainsAny(s, "?#") {
		return Path{}, errtrace.Wrap(newInvalidSegmentErr("path %q contains \"?\" or \"#\"", s))
	}
	return Path{segs: strings.Split(s, "/"), rooted: rooted}, nil
}

// Segments returns a copy of the segments.
func (p Path) Segments() []string { return slices.Clone(p.segs) }

// Segment returns the i-th segment.
func (p Path) Segment(i int) string { return p.segs[i] }

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// IsRooted reports whether the path starts with "/".
func (p Path) IsRooted() bool { return p.rooted }

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.segs) == 0 }

// Decoded returns the segments with percent-encoded octets decoded.
func (p Path) Decoded() []string {
	segs := make([]string, len(p.segs))
	for i, seg := range p.segs {
		segs[i] = grammar.Unescape(seg)
	}
	return segs
}

func shouldEscapeSegmentChar(c byte) bool { return !grammar.IsPChar(c) }

// RenderTo writes the path. Segment bytes outside pchar are percent-encoded.
func (p Path) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if p.rooted {
		cw.WriteString("/")
	}
	for i, seg := range p.segs {
		if i > 0 {
			cw.WriteString("/")
		}
		cw.WriteString(grammar.Escape(seg, shouldEscapeSegmentChar))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the path.
func (p Path) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (p Path) String() string { return p.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the Path.
func (p Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}
		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Path(p))
	}
}

// Equal reports whether val is a path with the same segments and rootedness.
func (p Path) Equal(val any) bool {
	var other Path
	switch v := val.(type) {
	case Path:
		other = v
	case *Path:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p.rooted == other.rooted && slices.Equal(p.segs, other.segs)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Path) UnmarshalText(text []byte) error {
	p1, err := ParsePath(text)
	if err != nil {
		*p = Path{}
		return errtrace.Wrap(err)
	}
	*p = p1
	return nil
}
