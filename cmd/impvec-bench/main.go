// impvec-bench is a benchmark and stress test for the impvec library.
// It measures shared-handle appends, reads and self-referential
// construction against a plain slice baseline, and verifies that element
// addresses stay fixed while the vector grows.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/phroun/impvec"
)

const (
	elementCount = 10_000_000
	ringSize     = 1_000_000
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.0f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.0f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("ImpVec Benchmark and Stress Test")
	fmt.Println("================================")
	fmt.Printf("Elements: %d\n", elementCount)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	results := []BenchResult{
		benchSliceAppend(),
		benchPush(),
		benchPushGetStability(),
		benchIterate(),
		benchRing(),
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	for _, r := range results {
		fmt.Println(r)
	}
}

func benchSliceAppend() BenchResult {
	start := time.Now()
	s := make([]int, 0)
	for i := 0; i < elementCount; i++ {
		s = append(s, i)
	}
	r := BenchResult{Name: "slice append (baseline)", Duration: time.Since(start), Ops: len(s)}
	fmt.Println(r)
	return r
}

func benchPush() BenchResult {
	start := time.Now()
	vec := impvec.New[int]()
	for i := 0; i < elementCount; i++ {
		vec.Push(i)
	}
	r := BenchResult{Name: "ImpVec.Push", Duration: time.Since(start), Ops: vec.Len()}
	fmt.Println(r)
	return r
}

func benchPushGetStability() BenchResult {
	const tracked = 1000

	start := time.Now()
	vec := impvec.New[int]()

	ptrs := make([]*int, 0, tracked)
	for i := 0; i < tracked; i++ {
		ptrs = append(ptrs, vec.PushGet(i))
	}
	for i := tracked; i < elementCount; i++ {
		vec.Push(i)
	}

	moved := 0
	for i, p := range ptrs {
		if p != vec.At(i) || *p != i {
			moved++
		}
	}
	if moved > 0 {
		fmt.Printf("FATAL: %d tracked elements moved during growth\n", moved)
		os.Exit(1)
	}

	r := BenchResult{
		Name:     "ImpVec.PushGet + stability check",
		Duration: time.Since(start),
		Ops:      elementCount,
		Extra:    fmt.Sprintf("%d tracked pointers stable", tracked),
	}
	fmt.Println(r)
	return r
}

func benchIterate() BenchResult {
	vec := impvec.New[int]()
	for i := 0; i < elementCount; i++ {
		vec.Push(i)
	}

	start := time.Now()
	sum := 0
	for v := range vec.Values() {
		sum += v
	}
	r := BenchResult{
		Name:     "ImpVec.Values full scan",
		Duration: time.Since(start),
		Ops:      vec.Len(),
		Extra:    fmt.Sprintf("sum=%d", sum),
	}
	fmt.Println(r)
	return r
}

type ringNode struct {
	id   int
	next *ringNode
}

func (n *ringNode) Next() *ringNode        { return n.next }
func (n *ringNode) SetNext(next *ringNode) { n.next = next }

func benchRing() BenchResult {
	start := time.Now()

	vec := impvec.New[ringNode]()
	first := vec.PushGet(ringNode{id: 0})
	prev := first
	for i := 1; i < ringSize; i++ {
		node := vec.PushGet(ringNode{id: i})
		prev.SetNext(node)
		prev = node
	}
	vec.At(ringSize - 1).SetNext(first)

	// Walk the closed ring twice.
	cur := first
	steps := 0
	for i := 0; i < 2*ringSize; i++ {
		cur = cur.Next()
		steps++
	}
	if cur != first {
		fmt.Println("FATAL: ring walk did not return to the start")
		os.Exit(1)
	}

	r := BenchResult{
		Name:     "linked ring build + 2N walk",
		Duration: time.Since(start),
		Ops:      ringSize + steps,
	}
	fmt.Println(r)
	return r
}
