package territory

import "container/heap"

type claim struct {
	cost float64
	seq  int
	city int
	cell int
}

// frontier is a min-heap of pending claims ordered by accumulated cost, with
// insertion order breaking ties.
type frontier struct {
	items []claim
	seq   int
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

func (q *frontier) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *frontier) Push(x any) { q.items = append(q.items, x.(claim)) }

func (q *frontier) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}

func (q *frontier) add(cost float64, city, cell int) {
	heap.Push(q, claim{cost: cost, seq: q.seq, city: city, cell: cell})
	q.seq++
}

func (q *frontier) next() claim { return heap.Pop(q).(claim) }
