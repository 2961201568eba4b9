package query

import "github.com/poiesic/confsearch/core"

// QueryMonitor provides hooks to observe the query pipeline.
// Implement this interface to track intermediate steps during a search.
// Hooks fire sequentially in corpus order after the scan completes, so
// implementations need not be thread-safe.
type QueryMonitor interface {
	Start(query string)
	KeywordsExtracted(keywords []string)
	SessionMatched(session *core.Session, rule MatchRule)
	Finish(response *core.QueryResponse)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) KeywordsExtracted(_ []string)                {}
func (n *noopMonitor) SessionMatched(_ *core.Session, _ MatchRule) {}
func (n *noopMonitor) Finish(_ *core.QueryResponse)                {}
