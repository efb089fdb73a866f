package scheduler

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rhyrak/timetable-wizard/pkg/model"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTooManyCombinations = errors.New("too many combinations")
)

// BuildSchedules enumerates every combination of the required courses plus one
// course per group and returns the topK best by total preference score.
//
// Candidates are ranked by score, then by enumeration order (last group varies
// fastest). A course counts once towards the score even if it shows up in
// required and in a group, but the returned course list keeps the raw picks.
func BuildSchedules(ctx context.Context, required []model.CourseID, groups [][]model.CourseID,
	scores map[model.CourseID]float64, topK int, opts Options) ([]model.Candidate, error) {
	if topK < 0 {
		return nil, fmt.Errorf("%w: top_k must not be negative, got %d", ErrInvalidInput, topK)
	}
	for i, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("%w: choice group %d is empty", ErrInvalidInput, i)
		}
	}
	if opts.MaxCombinations > 0 {
		if n := Combinations(groups); n > opts.MaxCombinations {
			return nil, fmt.Errorf("%w: %d combinations exceed the limit of %d", ErrTooManyCombinations, n, opts.MaxCombinations)
		}
	}

	required = dedupe(required)
	if topK == 0 || (len(groups) == 0 && len(required) == 0) {
		return []model.Candidate{}, nil
	}

	inRequired := make(map[model.CourseID]struct{}, len(required))
	var base float64
	for _, id := range required {
		inRequired[id] = struct{}{}
		base += lookup(scores, id)
	}

	checkEvery := opts.CheckEvery
	if checkEvery <= 0 {
		checkEvery = defaultCheckEvery
	}

	best := &candidateHeap{}
	picks := make([]model.CourseID, len(groups))
	idx := make([]int, len(groups))
	var seq uint64
	for {
		if seq%uint64(checkEvery) == 0 && seq > 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("schedule enumeration aborted after %d combinations: %w", seq, err)
			}
		}

		score := base
		for gi, ci := range idx {
			id := groups[gi][ci]
			picks[gi] = id
			if _, ok := inRequired[id]; ok || slices.Contains(picks[:gi], id) {
				continue
			}
			score += lookup(scores, id)
		}

		if best.Len() < topK {
			heap.Push(best, entry{score: score, seq: seq, courses: join(required, picks)})
		} else if score > (*best)[0].score {
			// Equal scores never evict: the resident entry was enumerated first.
			(*best)[0] = entry{score: score, seq: seq, courses: join(required, picks)}
			heap.Fix(best, 0)
		}
		seq++

		// advance the odometer, last group fastest
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(groups[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}

	ranked := []entry(*best)
	slices.SortFunc(ranked, func(a, b entry) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})

	out := make([]model.Candidate, len(ranked))
	for i, e := range ranked {
		out[i] = model.Candidate{Score: e.score, Courses: e.courses}
	}
	return out, nil
}

// Combinations returns the number of candidates the groups produce, saturating
// at math.MaxInt64. No groups means a single (required only) candidate.
func Combinations(groups [][]model.CourseID) int64 {
	var n int64 = 1
	for _, g := range groups {
		size := int64(len(g))
		if size == 0 {
			return 0
		}
		if n > math.MaxInt64/size {
			return math.MaxInt64
		}
		n *= size
	}
	return n
}

// lookup treats unknown courses and non-finite scores as zero.
func lookup(scores map[model.CourseID]float64, id model.CourseID) float64 {
	s := scores[id]
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

func join(required, picks []model.CourseID) []model.CourseID {
	out := make([]model.CourseID, 0, len(required)+len(picks))
	out = append(out, required...)
	return append(out, picks...)
}

type entry struct {
	score   float64
	seq     uint64
	courses []model.CourseID
}

// candidateHeap keeps the worst retained candidate at the root.
type candidateHeap []entry

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq > h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *candidateHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}
