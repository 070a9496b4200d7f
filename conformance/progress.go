package conformance

import (
	"sync"
	"time"

	"github.com/btcsuite/btclog"
)

// caseProgressLogger provides periodic logging of long conformance runs.
type caseProgressLogger struct {
	totalLogCases   int64
	recentLogCases  int64
	lastLogCaseTime time.Time

	subsystemLogger btclog.Logger
	progressAction  string
	sync.Mutex
}

// newCaseProgressLogger returns a new case progress logger.
// The progress message is templated as follows:
//  {progressAction} {numProcessed} {cases|case} in the last {timePeriod} (total {totalProcessed})
func newCaseProgressLogger(progressMessage string, logger btclog.Logger) *caseProgressLogger {
	return &caseProgressLogger{
		lastLogCaseTime: time.Now(),
		progressAction:  progressMessage,
		subsystemLogger: logger,
	}
}

// LogCases records n more checked cases.  In order to prevent spam, it
// limits logging to one message every 10 seconds with duration and totals
// included.
func (p *caseProgressLogger) LogCases(n int) {
	p.Lock()
	defer p.Unlock()

	p.totalLogCases += int64(n)
	p.recentLogCases += int64(n)

	now := time.Now()
	duration := now.Sub(p.lastLogCaseTime)
	if duration < time.Second*10 {
		return
	}

	// Truncate the duration to 10s of milliseconds.
	durationMillis := int64(duration / time.Millisecond)
	tDuration := 10 * time.Millisecond * time.Duration(durationMillis/10)

	caseStr := "cases"
	if p.recentLogCases == 1 {
		caseStr = "case"
	}
	p.subsystemLogger.Infof("%s %d %s in the last %s (total %d)",
		p.progressAction, p.recentLogCases, caseStr, tDuration, p.totalLogCases)

	p.recentLogCases = 0
	p.lastLogCaseTime = now
}
