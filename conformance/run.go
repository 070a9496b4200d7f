// Copyright (c) 2021 - LBRY Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conformance

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// shardSize is the number of cases one worker checks per task.
const shardSize = 256

// Report summarizes a conformance run.
type Report struct {
	Cases    int
	Failures []Failure
	Elapsed  time.Duration
}

// Passed reports whether every case satisfied every invariant.
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// Run checks cases against n, sharded across up to workers goroutines.  n must
// be safe for concurrent use.  Failures are returned ordered by line.
func Run(ctx context.Context, n Normalizer, cases []Case, workers int) (*Report, error) {
	if workers < 1 {
		workers = 1
	}
	start := time.Now()
	progress := newCaseProgressLogger("Checked", log)

	var mu sync.Mutex
	report := &Report{Cases: len(cases)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(cases); lo += shardSize {
		hi := lo + shardSize
		if hi > len(cases) {
			hi = len(cases)
		}
		shard := cases[lo:hi]

		g.Go(func() error {
			var failures []Failure
			for _, c := range shard {
				if err := ctx.Err(); err != nil {
					return err
				}
				f, err := Check(n, c)
				if err != nil {
					return err
				}
				failures = append(failures, f...)
			}
			progress.LogCases(len(shard))

			mu.Lock()
			report.Failures = append(report.Failures, failures...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(report.Failures, func(i, j int) bool {
		return report.Failures[i].Case.Line < report.Failures[j].Case.Line
	})
	report.Elapsed = time.Since(start)

	log.Infof("Checked %d cases in %s, %d failures", report.Cases,
		report.Elapsed.Truncate(time.Millisecond), len(report.Failures))

	return report, nil
}
