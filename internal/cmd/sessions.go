package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List discussion sessions in the responses folder",
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

// sessionInfo summarizes one session folder for listing.
type sessionInfo struct {
	Name   string
	Models int
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, err := listSessions(cfg.Discussion.ResponsesFolder)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tMODELS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Models)
	}
	return w.Flush()
}

// listSessions scans the responses folder for session directories and
// counts the model stores inside each. A missing responses folder means
// no sessions, not an error.
func listSessions(responsesFolder string) ([]sessionInfo, error) {
	entries, err := os.ReadDir(responsesFolder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []sessionInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		stores, err := filepath.Glob(filepath.Join(responsesFolder, entry.Name(), "*.db"))
		if err != nil {
			return nil, err
		}
		if len(stores) == 0 {
			continue
		}
		sessions = append(sessions, sessionInfo{Name: entry.Name(), Models: len(stores)})
	}

	// Folder names end in a sortable timestamp; list newest first.
	sort.Slice(sessions, func(i, j int) bool {
		return sessionTimestamp(sessions[i].Name) > sessionTimestamp(sessions[j].Name)
	})
	return sessions, nil
}

func sessionTimestamp(name string) string {
	idx := strings.LastIndex(name, " - ")
	if idx == -1 {
		return ""
	}
	return name[idx+3:]
}
