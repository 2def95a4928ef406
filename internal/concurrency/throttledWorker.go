package concurrency

import (
	"time"
)

// ThrottledWorker runs a job per argument at a fixed pace, used to keep
// bursts of bridge writes under the bridge's rate limit.
type ThrottledWorker struct {
	jobCallback func(arg string) error
	interval    time.Duration
}

func NewThrottledWorker(interval time.Duration, jobCallback func(arg string) error) ThrottledWorker {
	return ThrottledWorker{jobCallback: jobCallback, interval: interval}
}

func (w *ThrottledWorker) Run(jobArgs []string) {

	jobArgsChannel := make(chan string, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	for arg := range jobArgsChannel {
		<-limiter.C
		w.jobCallback(arg)
	}

}
