package discussion

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Iron-Ham/parley/internal/config"
	"github.com/Iron-Ham/parley/internal/convergence"
	"github.com/Iron-Ham/parley/internal/errors"
	"github.com/Iron-Ham/parley/internal/llm"
	"github.com/Iron-Ham/parley/internal/logging"
	"github.com/Iron-Ham/parley/internal/store"
)

// folderTimestampLayout names session folders: "{title} - {YYYYMMDDHHMMSS}".
const folderTimestampLayout = "20060102150405"

// Settings holds the per-run parameters of a discussion session.
type Settings struct {
	// Title names the session and its output folder.
	Title string
	// ResearchPrompt is the fixed question under discussion.
	ResearchPrompt string
	// MaxInteractions is the maximum round count; must be at least 2.
	MaxInteractions int
}

// Session is the discussion orchestrator. It owns the session folder,
// one response store per participant, and the continue/stop decision.
// Execution is single-threaded: rounds run one after another, and within
// a round participants are queried strictly in configuration order.
type Session struct {
	title           string
	researchPrompt  string
	maxInteractions int
	threshold       float64
	folder          string
	participants    []*Participant
	latest          map[string]string
	status          Status
	log             *logging.Logger
}

// NewSession validates settings and configuration, builds every
// participant's completion backend, and creates the session folder with
// one fresh store per participant. All validation happens before any
// filesystem side effect: an invalid configuration leaves no partial
// session behind. Each call creates a freshly timestamped folder, so
// restart-from-scratch is the only recovery path.
func NewSession(cfg *config.Config, settings Settings, log *logging.Logger, opts ...Option) (*Session, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if settings.MaxInteractions < 2 {
		return nil, errors.NewConfigError(
			fmt.Sprintf("max interactions %d", settings.MaxInteractions), errors.ErrTooFewRounds)
	}
	if len(cfg.Models) == 0 {
		return nil, errors.NewConfigError("models", errors.ErrNoParticipants)
	}

	log = log.WithSession(settings.Title)

	// Build every backend before touching the filesystem: an unsupported
	// provider is a configuration error, not a per-round failure.
	providers := make([]llm.Provider, len(cfg.Models))
	for i, m := range cfg.Models {
		p, err := options.providerFactory(m, log.WithModel(m.Name))
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("initializing model %s", m.Name), err)
		}
		providers[i] = p
	}

	timestamp := time.Now().Format(folderTimestampLayout)
	folder := filepath.Join(cfg.Discussion.ResponsesFolder,
		fmt.Sprintf("%s - %s", settings.Title, timestamp))

	participants := make([]*Participant, len(cfg.Models))
	for i, m := range cfg.Models {
		st, err := store.Open(filepath.Join(folder, m.Name+".db"))
		if err != nil {
			closeStores(participants[:i])
			return nil, err
		}
		participants[i] = &Participant{
			Name:     m.Name,
			Provider: providers[i],
			Store:    st,
		}
	}

	return &Session{
		title:           settings.Title,
		researchPrompt:  settings.ResearchPrompt,
		maxInteractions: settings.MaxInteractions,
		threshold:       cfg.Discussion.ConvergenceThreshold,
		folder:          folder,
		participants:    participants,
		latest:          make(map[string]string),
		status:          StatusPending,
		log:             log,
	}, nil
}

// Folder returns the session's output folder path.
func (s *Session) Folder() string {
	return s.folder
}

// Status returns the session's current state.
func (s *Session) Status() Status {
	return s.status
}

// Run executes the discussion until convergence or round exhaustion.
// Every executed round writes exactly one record per participant. A
// provider or storage error aborts the run; records of completed rounds
// remain on disk.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	s.status = StatusRunning
	s.log.Info("starting discussion",
		"models", len(s.participants),
		"max_interactions", s.maxInteractions,
		"threshold", s.threshold,
		"folder", s.folder)

	var average float64
	for round := 1; round <= s.maxInteractions; round++ {
		log := s.log.WithRound(round)

		for _, p := range s.participants {
			messages := s.buildPrompt(round, p.Name)

			log.Info("querying model", "model", p.Name)
			response, err := p.Provider.GenerateCompletion(ctx, messages)
			if err != nil {
				return nil, errors.NewProviderError(string(p.Provider.Name()), p.Name, err)
			}

			value := convergence.Extract(response)
			if err := p.Store.Insert(round, response, value); err != nil {
				return nil, err
			}

			// Participants queried later in this round observe this
			// answer; earlier ones saw the previous round's entry.
			s.latest[p.Name] = response

			log.Debug("response recorded", "model", p.Name, "convergence", value)
		}

		var converged bool
		converged, average = convergence.Check(s.latest, s.threshold)
		log.Info("round complete", "average", average, "converged", converged)

		if converged {
			s.status = StatusConverged
			return &Result{Status: StatusConverged, Rounds: round, Average: average, Folder: s.folder}, nil
		}
	}

	s.status = StatusExhausted
	return &Result{Status: StatusExhausted, Rounds: s.maxInteractions, Average: average, Folder: s.folder}, nil
}

// buildPrompt selects the initial prompt for round 1 and the iterative
// prompt for all later rounds.
func (s *Session) buildPrompt(round int, name string) []llm.Message {
	if round == 1 {
		return BuildInitialPrompt(s.researchPrompt, convergence.RequiredPhrase)
	}

	peers := make([]PeerResponse, 0, len(s.participants)-1)
	for _, p := range s.participants {
		if p.Name == name {
			continue
		}
		if response, ok := s.latest[p.Name]; ok {
			peers = append(peers, PeerResponse{Name: p.Name, Response: response})
		}
	}
	return BuildIterativePrompt(s.researchPrompt, s.latest[name], peers, convergence.RequiredPhrase)
}

// Close releases every participant's response store.
func (s *Session) Close() error {
	var errs []error
	for _, p := range s.participants {
		if err := p.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func closeStores(participants []*Participant) {
	for _, p := range participants {
		if p != nil {
			_ = p.Store.Close()
		}
	}
}
