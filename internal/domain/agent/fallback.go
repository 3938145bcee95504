package agent

import (
	"fmt"
	"strings"
)

// The agent sometimes answers correctly but skips the "Final Answer:" marker
// the output parser demands. Extract recovers the answer text from the parse
// failure so the framework can re-present it to the model as an observation
// instead of surfacing a hard error.

// Both marker formats are versioned contracts with upstream parsers: the
// backtick-delimited form is the classic LangChain wording, the plain prefix
// is langchaingo's.
const (
	parseFailureMarker = "Could not parse LLM output: `"
	parserErrorPrefix  = "unable to parse agent output: "
)

const (
	repeatTemplate  = "Output parsed but format incorrect. Please repeat this EXACT answer with the prefix 'Final Answer:': %s"
	genericTemplate = "Error: %s. Please check your output format. If you have the answer, output it as 'Final Answer: [your answer]'."
)

// Extract turns a raw parse-failure message into an instruction for the
// model's next turn. It is total: every input, malformed or not, yields a
// usable string.
func Extract(errorText string) string {
	if parts := strings.Split(errorText, parseFailureMarker); len(parts) > 1 {
		response := strings.TrimSuffix(parts[1], "`")
		return fmt.Sprintf(repeatTemplate, response)
	}

	if idx := strings.Index(errorText, parserErrorPrefix); idx >= 0 {
		response := strings.TrimSpace(errorText[idx+len(parserErrorPrefix):])
		if response != "" {
			return fmt.Sprintf(repeatTemplate, response)
		}
	}

	return fmt.Sprintf(genericTemplate, errorText)
}
