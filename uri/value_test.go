package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uriparse/uri"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		v1, v2 uri.Value
		want   uri.Value
	}{
		{"scalar scalar", uri.Scalar("1"), uri.Scalar("2"), uri.List("1", "2")},
		{"array scalar", uri.List("1", "2"), uri.Scalar("3"), uri.List("1", "2", "3")},
		{"scalar array", uri.Scalar("1"), uri.List("2", "3"), uri.List("1", "2", "3")},
		{"array array", uri.List("1"), uri.List("2", "3"), uri.List("1", "2", "3")},
		{
			"string keys overwrite in place",
			uri.Array{{Key: "color", Value: uri.Scalar("red")}, {Key: "0", Value: uri.Scalar("x")}},
			uri.Array{{Key: "color", Value: uri.Scalar("blue")}, {Key: "5", Value: uri.Scalar("y")}},
			uri.Array{
				{Key: "color", Value: uri.Scalar("blue")},
				{Key: "0", Value: uri.Scalar("x")},
				{Key: "1", Value: uri.Scalar("y")},
			},
		},
		{
			"scalar and keyed array",
			uri.Scalar("1"),
			uri.Array{{Key: "k", Value: uri.Scalar("v")}},
			uri.Array{{Key: "0", Value: uri.Scalar("1")}, {Key: "k", Value: uri.Scalar("v")}},
		},
		{
			"leading zero key is not an index",
			uri.List("a"),
			uri.Array{{Key: "01", Value: uri.Scalar("b")}},
			uri.Array{{Key: "0", Value: uri.Scalar("a")}, {Key: "01", Value: uri.Scalar("b")}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := uri.Merge(c.v1, c.v2)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.Merge(%v, %v) = %v, want %v\ndiff (-got +want):\n%v", c.v1, c.v2, got, c.want, diff)
			}
		})
	}
}

func TestArray_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		arr  uri.Array
		want string
	}{
		{"empty", uri.Array{}, "[]"},
		{"list", uri.List("1", "2"), "[1, 2]"},
		{"keyed", uri.Array{{Key: "color", Value: uri.Scalar("red")}}, "[color=red]"},
		{"nested", uri.Array{{Key: "0", Value: uri.List("a")}}, "[[a]]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.arr.String(); got != c.want {
				t.Errorf("arr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestArray_Get(t *testing.T) {
	t.Parallel()

	arr := uri.Array{{Key: "a", Value: uri.Scalar("1")}, {Key: "b", Value: uri.Scalar("2")}}
	if v, ok := arr.Get("b"); !ok || !v.Equal(uri.Scalar("2")) {
		t.Errorf("arr.Get(\"b\") = (%v, %v), want (2, true)", v, ok)
	}
	if _, ok := arr.Get("c"); ok {
		t.Errorf("arr.Get(\"c\") ok = true, want false")
	}
	if arr.IsList() {
		t.Errorf("arr.IsList() = true, want false")
	}
	if !uri.List("x", "y").IsList() {
		t.Errorf("uri.List(x, y).IsList() = false, want true")
	}
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    uri.Value
		val  any
		want bool
	}{
		{"scalar", uri.Scalar("a"), uri.Scalar("a"), true},
		{"scalar differs", uri.Scalar("a"), uri.Scalar("b"), false},
		{"scalar vs array", uri.Scalar("a"), uri.List("a"), false},
		{"scalar vs string", uri.Scalar("a"), "a", false},
		{"array", uri.List("a", "b"), uri.List("a", "b"), true},
		{"array order", uri.List("a", "b"), uri.List("b", "a"), false},
		{"array nil ptr", uri.List("a"), (*uri.Array)(nil), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.v.Equal(c.val); got != c.want {
				t.Errorf("v.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}
