// Package search implements C4: a background, cancellable fuzzy/substring
// search over a data frame that continuously publishes progressively
// refined, rank-ordered snapshots. Grounded in the original's
// misc/search.rs two-thread (search + collector) design; Go's
// goroutines/channels/context replace Rust's threads/mpsc/AtomicBool.
package search

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// publishInterval is the collector's re-sort-and-publish cadence.
const publishInterval = 100 * time.Millisecond

// cell is one (row, rendered value) pair fed to the scorer.
type cell struct {
	row   int
	value string
}

type scored struct {
	row   int
	score int64
}

// slot is a mutex-protected option cell: writers replace, readers take,
// leaving it empty until the next publication (spec §3).
type slot struct {
	mu sync.Mutex
	df *dataframe.DataFrame
}

func (s *slot) put(df dataframe.DataFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := df
	s.df = &cp
}

func (s *slot) take() (dataframe.DataFrame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.df == nil {
		return dataframe.DataFrame{}, false
	}
	df := *s.df
	s.df = nil
	return df, true
}

// Session owns one in-flight search. Cancel (or letting it be garbage
// collected after calling Cancel) stops both background goroutines
// promptly; there is no in-place retargeting — changing the pattern means
// constructing a new Session (spec §4.4 "Replacement").
type Session struct {
	pattern string
	out     *slot
	cancel  context.CancelFunc
	done    chan struct{}
}

// New starts a search of df for pattern using strategy. If pattern is
// empty, df is published once verbatim and no background work occurs.
func New(df dataframe.DataFrame, pattern string, strategy Strategy) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		pattern: pattern,
		out:     &slot{},
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	if pattern == "" {
		s.out.put(df)
		close(s.done)
		return s
	}

	results := make(chan scored, 256)
	var wg sync.WaitGroup
	wg.Add(1)
	go searchWorker(ctx, df, pattern, strategy, results, &wg)
	go func() {
		wg.Wait()
		close(results)
	}()
	go collector(ctx, df, results, s.out, s.done)

	return s
}

// Pattern returns the pattern this session was constructed with.
func (s *Session) Pattern() string { return s.pattern }

// Latest takes the most recently published data frame, if any has arrived
// since the last call.
func (s *Session) Latest() (dataframe.DataFrame, bool) { return s.out.take() }

// Cancel stops both background goroutines at their next poll point. Safe
// to call multiple times.
func (s *Session) Cancel() { s.cancel() }

// searchWorker fans (row, cell) pairs across a worker pool, scores each,
// and sends matches to results. It checks ctx at least once per row.
func searchWorker(ctx context.Context, df dataframe.DataFrame, pattern string, strategy Strategy, results chan<- scored, wg *sync.WaitGroup) {
	defer wg.Done()

	cells := make(chan cell, 256)
	go func() {
		defer close(cells)
		cols := df.Columns()
		for row := 0; row < df.Height(); row++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			for _, col := range cols {
				v := col.At(row)
				value := dataframe.RenderMultiLine(v, col)
				select {
				case cells <- cell{row: row, value: value}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	var workerWG sync.WaitGroup
	workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer workerWG.Done()
			for c := range cells {
				select {
				case <-ctx.Done():
					return
				default:
				}
				score, ok := strategy.Score(c.value, pattern)
				if !ok {
					continue
				}
				select {
				case results <- scored{row: c.row, score: score}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	workerWG.Wait()
}

// collector accumulates row -> best score (max on collision) and, every
// publishInterval, re-sorts by (-score, row) and publishes the
// corresponding materialized data frame. Exits when results closes or ctx
// is cancelled.
func collector(ctx context.Context, df dataframe.DataFrame, results <-chan scored, out *slot, done chan struct{}) {
	defer close(done)

	idxScore := make(map[int]int64)
	ticker := time.NewTicker(publishInterval)
	defer ticker.Stop()

	drain := func() bool {
		for {
			select {
			case r, ok := <-results:
				if !ok {
					return false
				}
				if cur, seen := idxScore[r.row]; !seen || r.score > cur {
					idxScore[r.row] = r.score
				}
			default:
				return true
			}
		}
	}

	publish := func() {
		rows := make([]int, 0, len(idxScore))
		for row := range idxScore {
			rows = append(rows, row)
		}
		sort.Slice(rows, func(i, j int) bool {
			si, sj := idxScore[rows[i]], idxScore[rows[j]]
			if si != sj {
				return si > sj
			}
			return rows[i] < rows[j]
		})
		out.put(df.Take(rows))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-results:
			if !ok {
				publish()
				return
			}
			if cur, seen := idxScore[r.row]; !seen || r.score > cur {
				idxScore[r.row] = r.score
			}
		case <-ticker.C:
			if !drain() {
				publish()
				return
			}
			publish()
		}
	}
}
