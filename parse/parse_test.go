package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yesagainivan/cosy/ir"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func TestParseScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`42`, ir.FromInt(42)},
		{`-17`, ir.FromInt(-17)},
		{`3.5`, ir.FromFloat(3.5)},
		{`1e2`, ir.FromFloat(100)},
		{`"hi"`, ir.FromString("hi")},
	} {
		got := mustParse(t, tc.in)
		if !ir.Equal(got, tc.want) {
			t.Errorf("%s: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseObject(t *testing.T) {
	got := mustParse(t, `{
		name: "Alice"
		age: 30
		scores: [95, 87, 92]
	}`)
	if got.Type != ir.ObjectType {
		t.Fatalf("got %s, want object", got.Type)
	}
	if name := got.Get("name"); name == nil || name.String != "Alice" {
		t.Errorf("got name %+v, want Alice", name)
	}
	if age := got.Get("age"); age == nil || age.Int64 != 30 {
		t.Errorf("got age %+v, want 30", age)
	}
	scores := got.Get("scores")
	if scores == nil || scores.Type != ir.ArrayType || len(scores.Values) != 3 {
		t.Fatalf("got scores %+v", scores)
	}
}

func TestSeparators(t *testing.T) {
	for _, in := range []string{
		`{a: 1, b: 2}`,
		"{a: 1\nb: 2}",
		"{a: 1,\nb: 2}",
		"{a: 1, b: 2,}",
		"{\n\na: 1\n\n\nb: 2\n}",
		`[1, 2,]`,
		"[1\n2]",
	} {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestMissingSeparator(t *testing.T) {
	for _, in := range []string{
		`{a: 1 b: 2}`,
		`[1 2]`,
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v, want parse error", in, err)
		}
	}
}

func TestKeyOrderPreserved(t *testing.T) {
	got := mustParse(t, `{z: 1, a: 2, m: 3}`)
	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, got.Fields); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestDuplicateKeys(t *testing.T) {
	got := mustParse(t, `{a: 1, b: 2, a: 3}`)
	if diff := cmp.Diff([]string{"a", "b"}, got.Fields); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if v := got.Get("a"); v.Int64 != 3 {
		t.Errorf("got a=%d, want 3", v.Int64)
	}
}

func TestQuotedKeys(t *testing.T) {
	got := mustParse(t, `{"a key": 1}`)
	if v := got.Get("a key"); v == nil || v.Int64 != 1 {
		t.Errorf("got %+v, want 1", v)
	}
}

func TestCommentAttachment(t *testing.T) {
	got := mustParse(t, `{
		// comment 1
		a: 1
		// comment 2
		b: 2
	}`)
	a := got.Get("a")
	if diff := cmp.Diff([]string{"comment 1"}, a.Comments); diff != "" {
		t.Errorf("a comments (-want +got):\n%s", diff)
	}
	b := got.Get("b")
	if diff := cmp.Diff([]string{"comment 2"}, b.Comments); diff != "" {
		t.Errorf("b comments (-want +got):\n%s", diff)
	}
}

func TestRootComments(t *testing.T) {
	got := mustParse(t, "// header\n// more\n{a: 1}\n")
	if diff := cmp.Diff([]string{"header", "more"}, got.Comments); diff != "" {
		t.Errorf("root comments (-want +got):\n%s", diff)
	}
}

func TestArrayComments(t *testing.T) {
	got := mustParse(t, `[
		// first
		1,
		// second
		2
	]`)
	if diff := cmp.Diff([]string{"first"}, got.Values[0].Comments); diff != "" {
		t.Errorf("first element comments (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"second"}, got.Values[1].Comments); diff != "" {
		t.Errorf("second element comments (-want +got):\n%s", diff)
	}
}

func TestParseCommentsOff(t *testing.T) {
	got, err := Parse([]byte("// hi\n{a: 1}"), ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if got.Comments != nil {
		t.Errorf("got comments %v, want none", got.Comments)
	}
}

func TestTrailingGarbage(t *testing.T) {
	_, err := Parse([]byte("42 99"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Pos.Line != 1 || pe.Pos.Col != 4 {
		t.Errorf("got %s, want line 1, column 4", pe.Pos)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		`{a 1}`,
		`{1: 2}`,
		`{a:}`,
		`[1,,2]`,
		`{`,
		``,
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v, want parse error", in, err)
		}
	}
}

func TestEmptyContainers(t *testing.T) {
	obj := mustParse(t, `{}`)
	if obj.Type != ir.ObjectType || len(obj.Fields) != 0 {
		t.Errorf("got %+v, want empty object", obj)
	}
	arr := mustParse(t, `[]`)
	if arr.Type != ir.ArrayType || len(arr.Values) != 0 {
		t.Errorf("got %+v, want empty array", arr)
	}
}
