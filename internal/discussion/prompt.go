package discussion

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/parley/internal/llm"
)

// PeerResponse pairs a participant name with that participant's latest
// answer. Prompt builders receive peers as an ordered slice so the
// produced message is deterministic for a given input.
type PeerResponse struct {
	Name     string
	Response string
}

// BuildInitialPrompt produces the round-1 message sequence: a single
// user message asking for a direct, evidence-grounded opinion on the
// research prompt, forbidding role-play and meta commentary, and
// mandating the literal convergence sentence.
func BuildInitialPrompt(researchPrompt, requiredPhrase string) []llm.Message {
	text := fmt.Sprintf(
		"Please provide a substantive, evidence-based opinion on %s. "+
			"Your answer should be direct and grounded in current scientific research, focusing solely on the topic. "+
			"Additionally, include exactly the following sentence somewhere in your response: '%s'. "+
			"Do not include any role-play, meta commentary, or discussion of your own identity as an AI.",
		researchPrompt, requiredPhrase)

	return []llm.Message{{Role: "user", Content: text}}
}

// BuildIterativePrompt produces the message sequence for rounds 2 and
// later: a single user message quoting the participant's own previous
// answer verbatim, listing every peer's latest answer labeled by name,
// and asking for an updated opinion with the mandatory sentence
// repeated. The peer list must already exclude the requesting
// participant. Long histories are included in full; there is no
// truncation or summarization.
func BuildIterativePrompt(researchPrompt, ownLastResponse string, peers []PeerResponse, requiredPhrase string) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"Based on your previous response (shown below) and the latest opinions from your peers, "+
			"please update your evidence-based opinion on %s. "+
			"Ensure that your answer is factual, grounded in current scientific research, and focused solely on the topic. "+
			"Include exactly the following sentence somewhere in your response: '%s'.\n\n",
		researchPrompt, requiredPhrase)
	fmt.Fprintf(&sb, "Your previous answer:\n%s\n\n", ownLastResponse)
	sb.WriteString("Your peers' latest opinions:\n")
	for _, peer := range peers {
		fmt.Fprintf(&sb, "%s: %s\n", peer.Name, peer.Response)
	}

	return []llm.Message{{Role: "user", Content: sb.String()}}
}
