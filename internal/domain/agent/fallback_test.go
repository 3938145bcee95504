package agent

import (
	"strings"
	"testing"
)

func TestExtractRecoversAnswerFromMarker(t *testing.T) {
	got := Extract("Could not parse LLM output: `The answer is 42`")
	want := "Output parsed but format incorrect. Please repeat this EXACT answer with the prefix 'Final Answer:': The answer is 42"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractStripsOnlyOneTrailingBacktick(t *testing.T) {
	got := Extract("Could not parse LLM output: `There are `film` and `actor` tables`")
	if !strings.Contains(got, "There are `film` and `actor` tables") {
		t.Fatalf("inner backticks must survive: %q", got)
	}
	if strings.HasSuffix(got, "`") {
		t.Fatalf("trailing backtick not stripped: %q", got)
	}
}

func TestExtractMarkerWithoutClosingBacktick(t *testing.T) {
	got := Extract("Could not parse LLM output: `no closing delimiter")
	if !strings.Contains(got, "no closing delimiter") {
		t.Fatalf("answer text lost: %q", got)
	}
	if !strings.HasPrefix(got, "Output parsed but format incorrect.") {
		t.Fatalf("unexpected template: %q", got)
	}
}

func TestExtractMarkerAppearingTwiceUsesFirstRemainder(t *testing.T) {
	input := "Could not parse LLM output: `first` and then Could not parse LLM output: `second`"
	got := Extract(input)
	if !strings.Contains(got, "first") {
		t.Fatalf("first occurrence's remainder missing: %q", got)
	}
	if strings.Contains(got, "second`") {
		t.Fatalf("second occurrence leaked with delimiter: %q", got)
	}
}

func TestExtractHandlesFrameworkParserWording(t *testing.T) {
	got := Extract("unable to parse agent output: The film count is 1000")
	if !strings.Contains(got, "The film count is 1000") {
		t.Fatalf("answer text lost: %q", got)
	}
	if !strings.HasPrefix(got, "Output parsed but format incorrect.") {
		t.Fatalf("unexpected template: %q", got)
	}
}

func TestExtractFallsBackWithoutMarker(t *testing.T) {
	got := Extract("connection reset by peer")
	want := "Error: connection reset by peer. Please check your output format. If you have the answer, output it as 'Final Answer: [your answer]'."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractIsTotal(t *testing.T) {
	for _, input := range []string{"", "Could not parse LLM output: `", "unable to parse agent output: ", "`````"} {
		if Extract(input) == "" {
			t.Fatalf("Extract(%q) returned empty string", input)
		}
	}
}
