// Package route orders dispensing stops to keep head travel short.
//
// An exact shortest visiting order is the traveling-salesman path problem,
// so the optimizer settles for a deterministic heuristic: nearest-neighbor
// construction followed by 2-opt segment reversals. The path is open; the
// dispenser does not return to its start.
package route

import (
	"github.com/solderworks/rpt2paste/pkg/geom"
)

// maxPasses bounds the 2-opt improvement loop on large pad counts.
// Hitting the cap just keeps the best order found so far.
const maxPasses = 32

// Reversal gains below this threshold are treated as noise, so coincident
// points cannot keep the loop alive.
const minGain = 1e-9

// Optimize returns a visiting order over points that approximately
// minimizes total travel distance. The result is a permutation of the
// point indices and is deterministic for identical input.
func Optimize(points []geom.Point) []int {
	order := nearestNeighbor(points)
	twoOpt(points, order)
	return order
}

// PathLength returns the total travel distance of visiting points in order.
func PathLength(points []geom.Point, order []int) float64 {
	var total float64
	for i := 1; i < len(order); i++ {
		total += geom.Distance(points[order[i-1]], points[order[i]])
	}
	return total
}

// startIndex picks the pad with the lowest y, then x, then index.
// A fixed starting corner keeps the result independent of input order noise.
func startIndex(points []geom.Point) int {
	best := 0
	for i := 1; i < len(points); i++ {
		p, q := points[i], points[best]
		if p.Y < q.Y || (p.Y == q.Y && p.X < q.X) {
			best = i
		}
	}
	return best
}

// nearestNeighbor builds an initial order by repeatedly appending the
// closest unvisited point. Ties go to the lowest index.
func nearestNeighbor(points []geom.Point) []int {
	n := len(points)
	order := make([]int, 0, n)
	if n == 0 {
		return order
	}

	visited := make([]bool, n)
	cur := startIndex(points)
	visited[cur] = true
	order = append(order, cur)

	for len(order) < n {
		next := -1
		bestDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := geom.Distance(points[cur], points[i])
			if next < 0 || d < bestDist {
				next = i
				bestDist = d
			}
		}
		visited[next] = true
		order = append(order, next)
		cur = next
	}
	return order
}

// twoOpt improves order in place by reversing segments whose endpoints can
// be reconnected more cheaply. Scan order is fixed and only strict gains
// are taken, so the result is deterministic.
func twoOpt(points []geom.Point, order []int) {
	n := len(order)
	if n < 3 {
		return
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				a := points[order[i-1]]
				b := points[order[i]]
				c := points[order[j]]

				// Reversing order[i:j+1] replaces edges (a,b) and
				// (c,d) with (a,c) and (b,d). At the path end there
				// is no edge (c,d) to pay for.
				gain := geom.Distance(a, b) - geom.Distance(a, c)
				if j < n-1 {
					d := points[order[j+1]]
					gain += geom.Distance(c, d) - geom.Distance(b, d)
				}
				if gain > minGain {
					reverse(order[i : j+1])
					improved = true
				}
			}
		}
		if !improved {
			return
		}
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
