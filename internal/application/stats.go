package application

import (
	"math"
	"sync"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/store"
)

// Stats is the derived summary panel for one tool's record set.
type Stats struct {
	Tool     model.Tool
	Total    int
	ByStatus map[string]int

	// CompletionPct is completed/total for remediation and
	// (pass+needs-work+fail)/total, i.e. the audited share, for baseline.
	CompletionPct float64

	WithColorIssues    int
	WithContrastIssues int
	WithSymbolIssues   int
	WithLabelIssues    int
	WithPopupIssues    int
	WithAnyIssue       int
}

// ComputeStats derives the stats panel from a record set. Pure function:
// no state, no side effects.
func ComputeStats(tool model.Tool, records []model.LayerRecord) Stats {
	st := Stats{
		Tool:     tool,
		Total:    len(records),
		ByStatus: make(map[string]int, len(model.Statuses(tool))),
	}
	for _, status := range model.Statuses(tool) {
		st.ByStatus[status] = 0
	}

	done := 0
	for _, r := range records {
		st.ByStatus[r.Status]++

		switch tool {
		case model.ToolRemediation:
			if r.Status == model.StatusCompleted {
				done++
			}
		default:
			if r.Status != model.StatusNotAudited {
				done++
			}
		}

		if r.ColorIssues {
			st.WithColorIssues++
		}
		if r.ContrastIssues {
			st.WithContrastIssues++
		}
		if r.SymbolIssues {
			st.WithSymbolIssues++
		}
		if r.LabelIssues {
			st.WithLabelIssues++
		}
		if r.PopupIssues {
			st.WithPopupIssues++
		}
		if r.HasAnyIssue() {
			st.WithAnyIssue++
		}
	}

	if st.Total > 0 {
		st.CompletionPct = round1(float64(done) / float64(st.Total) * 100)
	}

	return st
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// StatsService keeps the latest stats per tool, recomputed synchronously on
// every store mutation via the mutation listener.
type StatsService struct {
	mu     sync.RWMutex
	latest map[model.Tool]Stats
}

// NewStatsService creates the service and subscribes it to each store.
func NewStatsService(stores ...*store.Store) *StatsService {
	s := &StatsService{latest: make(map[model.Tool]Stats)}
	for _, st := range stores {
		s.latest[st.Tool()] = ComputeStats(st.Tool(), st.All())
		st.Subscribe(s.onMutation)
	}
	return s
}

func (s *StatsService) onMutation(tool model.Tool, records []model.LayerRecord) {
	stats := ComputeStats(tool, records)
	s.mu.Lock()
	s.latest[tool] = stats
	s.mu.Unlock()
}

// Latest returns the most recently computed stats for a tool.
func (s *StatsService) Latest(tool model.Tool) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[tool]
}
