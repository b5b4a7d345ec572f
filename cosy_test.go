package cosy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/parse"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func TestFromString(t *testing.T) {
	t.Setenv("COSY_TEST_PORT", "8080")
	node, err := FromString(`{port: ${COSY_TEST_PORT}, debug: false}`)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{port: 8080, debug: false}`)
	if !ir.Equal(node, want) {
		t.Errorf("unexpected value:\n%s", cmp.Diff(want, node))
	}
}

func TestLoadFileResolvesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.cosy", `{a: 1, b: 1}`)
	path := writeFile(t, dir, "app.cosy", `{extends: "base.cosy", b: 2}`)
	node, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{a: 1, b: 2}`)
	if !ir.Equal(node, want) {
		t.Errorf("unexpected value:\n%s", cmp.Diff(want, node))
	}
}

func TestLoadAndMerge(t *testing.T) {
	dir := t.TempDir()
	defaults := writeFile(t, dir, "defaults.cosy", `{host: "localhost", port: 80}`)
	local := writeFile(t, dir, "local.cosy", `{port: 8080}`)
	node, err := LoadAndMerge([]string{defaults, local})
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{host: "localhost", port: 8080}`)
	if !ir.Equal(node, want) {
		t.Errorf("unexpected value:\n%s", cmp.Diff(want, node))
	}
}

func TestLoadAndMergeEmpty(t *testing.T) {
	node, err := LoadAndMerge(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, ir.NewObject()) {
		t.Errorf("got %+v, want empty object", node)
	}
}

func TestErrorParsePosition(t *testing.T) {
	_, err := FromString("{a: 1\nb: }")
	if err == nil {
		t.Fatal("want error")
	}
	var cosyErr *Error
	if !errors.As(err, &cosyErr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want a parse error", err)
	}
	if cosyErr.Line() != 2 {
		t.Errorf("got line %d, want 2", cosyErr.Line())
	}
	if cosyErr.Column() == 0 {
		t.Error("got column 0, want a position")
	}
	if cosyErr.Message() == "" {
		t.Error("empty message")
	}
}

func TestErrorLexPosition(t *testing.T) {
	_, err := FromString("{a: @}")
	var cosyErr *Error
	if !errors.As(err, &cosyErr) {
		t.Fatalf("got %v, want *Error", err)
	}
	if cosyErr.Line() != 1 || cosyErr.Column() != 5 {
		t.Errorf("got %d:%d, want 1:5", cosyErr.Line(), cosyErr.Column())
	}
}

func TestErrorPositionless(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.cosy"))
	var cosyErr *Error
	if !errors.As(err, &cosyErr) {
		t.Fatalf("got %v, want *Error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist", err)
	}
	if cosyErr.Line() != 0 || cosyErr.Column() != 0 {
		t.Errorf("got %d:%d, want 0:0", cosyErr.Line(), cosyErr.Column())
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, `{a: 1, b: 2}`)
	b := mustParse(t, `{a: 1, b: 3}`)
	out := Diff(a, b)
	if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
		t.Errorf("got %q, want removed and added lines", out)
	}
	if !strings.Contains(out, "b: 2") || !strings.Contains(out, "b: 3") {
		t.Errorf("got %q, want both values shown", out)
	}
	if Diff(a, a) != "" {
		t.Error("equal values should diff empty")
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{a: 1, b: 2, c: {d: 3}}`)
	patch := mustParse(t, `{b: null, c: {e: 4}}`)
	res, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{a: 1, c: {d: 3, e: 4}}`)
	if !ir.Equal(res, want) {
		t.Errorf("unexpected value:\n%s", cmp.Diff(want, res))
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	node := mustParse(t, `{a: 1, b: {c: "x", d: [1, 2]}}`)
	data, err := ToYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("round trip changed the value:\n%s", cmp.Diff(node, back))
	}
}
