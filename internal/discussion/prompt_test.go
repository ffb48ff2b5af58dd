package discussion

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/parley/internal/convergence"
)

func TestBuildInitialPrompt(t *testing.T) {
	messages := BuildInitialPrompt("a promising avenue for cancer treatment", convergence.RequiredPhrase)

	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
	msg := messages[0]
	if msg.Role != "user" {
		t.Errorf("Role = %q, want %q", msg.Role, "user")
	}
	if !strings.Contains(msg.Content, "a promising avenue for cancer treatment") {
		t.Error("prompt should contain the research prompt")
	}
	if !strings.Contains(msg.Content, convergence.RequiredPhrase) {
		t.Error("prompt should contain the required convergence phrase")
	}
	if !strings.Contains(msg.Content, "Do not include any role-play") {
		t.Error("prompt should forbid role-play and meta commentary")
	}
}

func TestBuildIterativePrompt(t *testing.T) {
	peers := []PeerResponse{
		{Name: "claude-one", Response: "Immunotherapy leads."},
		{Name: "gpt-two", Response: "Targeted therapy leads."},
	}

	messages := BuildIterativePrompt("cancer treatment", "My earlier opinion.", peers, convergence.RequiredPhrase)

	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
	msg := messages[0]
	if msg.Role != "user" {
		t.Errorf("Role = %q, want %q", msg.Role, "user")
	}
	if !strings.Contains(msg.Content, "Your previous answer:\nMy earlier opinion.") {
		t.Error("prompt should quote the participant's own previous answer verbatim")
	}
	if !strings.Contains(msg.Content, "claude-one: Immunotherapy leads.") {
		t.Error("prompt should list claude-one's answer labeled by name")
	}
	if !strings.Contains(msg.Content, "gpt-two: Targeted therapy leads.") {
		t.Error("prompt should list gpt-two's answer labeled by name")
	}
	if !strings.Contains(msg.Content, convergence.RequiredPhrase) {
		t.Error("prompt should repeat the required convergence phrase")
	}
}

func TestBuildIterativePromptIsDeterministic(t *testing.T) {
	peers := []PeerResponse{
		{Name: "b", Response: "second"},
		{Name: "a", Response: "first"},
	}

	first := BuildIterativePrompt("topic", "own", peers, convergence.RequiredPhrase)
	second := BuildIterativePrompt("topic", "own", peers, convergence.RequiredPhrase)

	if first[0].Content != second[0].Content {
		t.Error("iterative prompt should be deterministic for identical inputs")
	}

	// Peer order in the prompt follows the given slice order.
	bIdx := strings.Index(first[0].Content, "b: second")
	aIdx := strings.Index(first[0].Content, "a: first")
	if bIdx == -1 || aIdx == -1 || bIdx > aIdx {
		t.Error("peers should appear in the provided order")
	}
}

func TestBuildIterativePromptIncludesFullHistories(t *testing.T) {
	long := strings.Repeat("Evidence paragraph. ", 500)
	peers := []PeerResponse{{Name: "peer", Response: long}}

	messages := BuildIterativePrompt("topic", long, peers, convergence.RequiredPhrase)

	// No truncation: both the own answer and the peer answer appear whole.
	if strings.Count(messages[0].Content, long) != 2 {
		t.Error("long responses should be included verbatim, untruncated")
	}
}
