package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/dembrandt/dtcg-validator/internal/diag"
	"github.com/dembrandt/dtcg-validator/internal/explain"
	"github.com/dembrandt/dtcg-validator/internal/validate"
)

func sampleResult() validate.Result {
	return validate.Result{
		Valid:      false,
		Errors:     []string{"Number token 'a' must be a number"},
		Warnings:   []string{"Token 'b' has unknown $type 'gravity', skipping value validation"},
		TokenCount: 2,
		Diagnostics: []diag.Diagnostic{
			diag.NewError(diag.ValueShape, "a", "Number token 'a' must be a number"),
			diag.NewWarning(diag.TypeUnknown, "b", "Token 'b' has unknown $type 'gravity', skipping value validation"),
		},
	}
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, "tokens.json", sampleResult(), PrettyOpts{})
	out := buf.String()

	if !strings.HasPrefix(out, "tokens.json: invalid — 1 error(s), 1 warning(s), 2 token(s)") {
		t.Fatalf("banner wrong:\n%s", out)
	}
	if !strings.Contains(out, "error") || !strings.Contains(out, "VAL4001") {
		t.Fatalf("error line missing:\n%s", out)
	}
	if !strings.Contains(out, "warning") || !strings.Contains(out, "TYP3001") {
		t.Fatalf("warning line missing:\n%s", out)
	}
}

func TestPrettyQuiet(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, "", sampleResult(), PrettyOpts{Quiet: true})
	out := buf.String()

	if strings.Count(out, "\n") != 1 {
		t.Fatalf("quiet mode must print only the banner:\n%s", out)
	}
	if !strings.HasPrefix(out, "invalid —") {
		t.Fatalf("fileless banner wrong:\n%s", out)
	}
}

func TestShortFormat(t *testing.T) {
	var buf bytes.Buffer
	Short(&buf, "tokens.json", sampleResult())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.HasPrefix(lines[0], "error VAL4001 tokens.json ") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "warning TYP3001 tokens.json ") {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestJSONPayload(t *testing.T) {
	var buf bytes.Buffer
	analysis := explain.Analyze(sampleResult().Errors)
	if err := JSON(&buf, "tokens.json", sampleResult(), &analysis); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var payload Payload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if payload.File != "tokens.json" || payload.Valid || payload.TokenCount != 2 {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.Analysis == nil || len(payload.Analysis.Annotations) != 1 {
		t.Fatalf("analysis = %+v", payload.Analysis)
	}
}

func TestJSONOmitsEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, "", sampleResult(), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.Contains(buf.String(), `"file"`) {
		t.Fatalf("empty file must be omitted:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"analysis"`) {
		t.Fatalf("nil analysis must be omitted:\n%s", buf.String())
	}
}
