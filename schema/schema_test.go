package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func mustValidate(t *testing.T, instance, schema string) Report {
	t.Helper()
	report, err := Validate(mustParse(t, instance), mustParse(t, schema))
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestValidInstance(t *testing.T) {
	report := mustValidate(t,
		`{host: "localhost", port: 8080, debug: true}`,
		`{host: "string", port: "integer", debug: "boolean"}`)
	if len(report) != 0 {
		t.Errorf("got %v, want empty report", report)
	}
}

func TestTypeMismatch(t *testing.T) {
	report := mustValidate(t, `{port: "8080"}`, `{port: "integer"}`)
	if len(report) != 1 {
		t.Fatalf("got %v, want one finding", report)
	}
	it := report[0]
	if it.Level != LevelError || it.Path != "$.port" {
		t.Errorf("got %+v, want error at $.port", it)
	}
	if !strings.Contains(it.Message, "expected integer, found string") {
		t.Errorf("got message %q", it.Message)
	}
}

func TestNumberMatchesIntegerAndFloat(t *testing.T) {
	for _, in := range []string{`{x: 1}`, `{x: 1.5}`} {
		if report := mustValidate(t, in, `{x: "number"}`); len(report) != 0 {
			t.Errorf("%s: got %v, want empty report", in, report)
		}
	}
	report := mustValidate(t, `{x: "1"}`, `{x: "number"}`)
	if len(report) != 1 {
		t.Errorf("got %v, want one finding", report)
	}
}

func TestAnyMatchesEverything(t *testing.T) {
	for _, in := range []string{`{x: 1}`, `{x: null}`, `{x: [1]}`, `{x: {y: 2}}`} {
		if report := mustValidate(t, in, `{x: "any"}`); len(report) != 0 {
			t.Errorf("%s: got %v, want empty report", in, report)
		}
	}
}

func TestMissingAndUnknownField(t *testing.T) {
	report := mustValidate(t, `{prt: 8080}`, `{port: "integer"}`)
	if len(report) != 2 {
		t.Fatalf("got %v, want two findings", report)
	}
	var sawMissing, sawUnknown bool
	for _, it := range report {
		if strings.Contains(it.Message, "Missing required field 'port'") {
			sawMissing = true
		}
		if strings.Contains(it.Message, "Unknown field 'prt'") {
			sawUnknown = true
			if !strings.Contains(it.Message, "did you mean 'port'?") {
				t.Errorf("got %q, want a typo suggestion", it.Message)
			}
		}
	}
	if !sawMissing || !sawUnknown {
		t.Errorf("got %v, want missing and unknown findings", report)
	}
}

func TestUnknownFieldNoSuggestionWhenFar(t *testing.T) {
	report := mustValidate(t, `{xyz: 1}`, `{port: "integer", xyz_enabled_here: "any"}`)
	for _, it := range report {
		if strings.Contains(it.Message, "Unknown field 'xyz'") &&
			strings.Contains(it.Message, "did you mean") {
			t.Errorf("got %q, want no suggestion", it.Message)
		}
	}
}

func TestOptionalField(t *testing.T) {
	report := mustValidate(t, `{}`, `{port: {type: "integer", optional: true}}`)
	if len(report) != 0 {
		t.Errorf("got %v, want empty report", report)
	}
	// present optional fields still type-check
	report = mustValidate(t, `{port: "x"}`, `{port: {type: "integer", optional: true}}`)
	if len(report) != 1 {
		t.Errorf("got %v, want one finding", report)
	}
}

func TestDeprecatedField(t *testing.T) {
	report := mustValidate(t,
		`{ssl_enabled: true}`,
		`{ssl_enabled: {type: "boolean", deprecated: "use tls"}}`)
	if len(report.Errors()) != 0 {
		t.Errorf("got errors %v, want none", report.Errors())
	}
	warnings := report.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("got %v, want exactly one warning", report)
	}
	if warnings[0].Path != "$.ssl_enabled" ||
		!strings.Contains(warnings[0].Message, "use tls") {
		t.Errorf("got %+v", warnings[0])
	}
}

func TestArraySchema(t *testing.T) {
	report := mustValidate(t, `{users: ["a", "b"]}`, `{users: ["string"]}`)
	if len(report) != 0 {
		t.Errorf("got %v, want empty report", report)
	}
	report = mustValidate(t, `{users: ["a", 2]}`, `{users: ["string"]}`)
	if len(report) != 1 {
		t.Fatalf("got %v, want one finding", report)
	}
	if report[0].Path != "$.users[1]" {
		t.Errorf("got path %q, want $.users[1]", report[0].Path)
	}
}

func TestNestedPaths(t *testing.T) {
	report := mustValidate(t,
		`{server: {port: "x"}}`,
		`{server: {port: "integer"}}`)
	if len(report) != 1 || report[0].Path != "$.server.port" {
		t.Errorf("got %v, want one finding at $.server.port", report)
	}
}

func TestMalformedSchemas(t *testing.T) {
	for _, tc := range []struct {
		instance, schema string
	}{
		{`{x: 1}`, `{x: "intger"}`},
		{`{x: [1]}`, `{x: []}`},
		{`{x: [1]}`, `{x: ["integer", "float"]}`},
		{`{x: 1}`, `{x: 5}`},
	} {
		_, err := Validate(mustParse(t, tc.instance), mustParse(t, tc.schema))
		if !errors.Is(err, ErrSchema) {
			t.Errorf("schema %s: got %v, want schema error", tc.schema, err)
		}
	}
}

func TestFindingsAccumulate(t *testing.T) {
	report := mustValidate(t,
		`{a: "x", b: "y", c: 1}`,
		`{a: "integer", b: "integer", d: "string"}`)
	// two mismatches, one missing, one unknown
	if len(report) != 4 {
		t.Errorf("got %d findings %v, want 4", len(report), report)
	}
}

func TestFindBestMatch(t *testing.T) {
	candidates := []string{"port", "host", "debug"}
	for _, tc := range []struct {
		target string
		want   string
		ok     bool
	}{
		{"prt", "port", true},
		{"pot", "port", true},
		{"hst", "host", true},
		{"xyz", "", false},
	} {
		got, ok := FindBestMatch(tc.target, candidates, 2)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: got (%q, %v), want (%q, %v)", tc.target, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFindBestMatchTies(t *testing.T) {
	got, ok := FindBestMatch("ab", []string{"ax", "ay"}, 2)
	if !ok || got != "ax" {
		t.Errorf("got (%q, %v), want first candidate ax", got, ok)
	}
}
