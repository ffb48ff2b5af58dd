// Package convergence extracts and aggregates the self-reported agreement
// signal embedded in otherwise free-text model responses.
//
// Every participant is instructed to include the exact sentence
//
//	"I am in agreement with {percentage}% of the overall opinions given by my peers."
//
// with a concrete number substituted for {percentage}. That sentence is the
// only structured signal the orchestrator reads back out of a response.
package convergence

import (
	"regexp"
	"strconv"
)

// RequiredPhrase is the sentence every model must include verbatim, with
// {percentage} substituted by the model. It is passed to prompt builders
// and matched by Extract.
const RequiredPhrase = "I am in agreement with {percentage}% of the overall opinions given by my peers."

// phrasePattern matches the required sentence with an integer or decimal
// percentage. Matching is case-sensitive and requires the exact wording,
// trailing period included.
var phrasePattern = regexp.MustCompile(`I am in agreement with (\d+(?:\.\d+)?)% of the overall opinions given by my peers\.`)

// Extract returns the agreement percentage reported in response. If the
// required sentence is absent or malformed, Extract returns 0.0: a missing
// signal silently degrades to zero agreement rather than erroring, and the
// raw response is stored regardless. Only the first match is used.
func Extract(response string) float64 {
	m := phrasePattern.FindStringSubmatch(response)
	if m == nil {
		return 0.0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0.0
	}
	return v
}

// Check reports whether the discussion has converged, given the latest
// response of every participant and a threshold percentage. The returned
// average is the unweighted arithmetic mean of each response's extracted
// value; converged is true iff average >= threshold. An empty map yields
// (false, 0) and never divides by zero.
func Check(latestResponses map[string]string, threshold float64) (bool, float64) {
	if len(latestResponses) == 0 {
		return false, 0.0
	}

	var total float64
	for _, response := range latestResponses {
		total += Extract(response)
	}
	avg := total / float64(len(latestResponses))
	return avg >= threshold, avg
}
