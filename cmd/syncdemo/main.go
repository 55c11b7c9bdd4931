// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command syncdemo exercises each syncx primitive with real goroutines and
// prints progress and timing.
//
// Usage:
//
//	go run ./cmd/syncdemo -demo all
//	go run ./cmd/syncdemo -demo queue -capacity 5 -items 10
//	go run ./cmd/syncdemo -demo reduce -size 1000000 -workers 8
//	go run ./cmd/syncdemo -demo integrate -size 100000 -workers 4
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"code.hybscloud.com/syncx"
	"code.hybscloud.com/syncx/integrate"
	"code.hybscloud.com/syncx/matrix"
)

// config is handed to every demo; nothing reads display settings globally.
type config struct {
	capacity int
	items    int
	workers  int
	size     int
	quiet    bool
}

func (c *config) printf(format string, args ...any) {
	if !c.quiet {
		fmt.Printf(format, args...)
	}
}

var demos = map[string]func(*config){
	"queue":     func(c *config) { runQueue(c, "bounded", syncx.Build[int](syncx.New(c.capacity))) },
	"spin":      func(c *config) { runQueue(c, "spin-flag", syncx.Build[int](syncx.New(c.capacity).Spin())) },
	"fifo":      runFIFO,
	"barrier":   runBarrier,
	"rw":        runGate,
	"reduce":    runReduce,
	"matrix":    runMatrix,
	"integrate": runIntegrate,
}

var order = []string{"queue", "spin", "fifo", "barrier", "rw", "reduce", "matrix", "integrate"}

func main() {
	demo := flag.String("demo", "all", "demo to run: "+strings.Join(order, ", ")+", all")
	cfg := &config{}
	flag.IntVar(&cfg.capacity, "capacity", 5, "queue capacity")
	flag.IntVar(&cfg.items, "items", 10, "items per producer")
	flag.IntVar(&cfg.workers, "workers", 3, "worker goroutines")
	flag.IntVar(&cfg.size, "size", 100, "reduction length / matrix side / integration intervals")
	flag.BoolVar(&cfg.quiet, "quiet", false, "print results and timing only")
	flag.Parse()

	if cfg.capacity < 1 || cfg.items < 0 || cfg.workers < 1 || cfg.size < 0 {
		log.Fatalf("syncdemo: invalid sizing: capacity=%d items=%d workers=%d size=%d",
			cfg.capacity, cfg.items, cfg.workers, cfg.size)
	}

	names := order
	if *demo != "all" {
		if _, ok := demos[*demo]; !ok {
			log.Fatalf("syncdemo: unknown demo %q", *demo)
		}
		names = []string{*demo}
	}

	for _, name := range names {
		fmt.Printf("── %s ─────────────────────────────────────────\n", name)
		start := time.Now()
		demos[name](cfg)
		fmt.Printf("%s finished in %v\n\n", name, time.Since(start))
	}
}

func runQueue(c *config, kind string, q syncx.Queue[int]) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= c.items; i++ {
			q.Produce(i)
			c.printf("  produced %d (len %d/%d)\n", i, q.Len(), q.Cap())
		}
	}()
	go func() {
		defer wg.Done()
		for range c.items {
			v := q.Consume()
			c.printf("  consumed %d (len %d/%d)\n", v, q.Len(), q.Cap())
		}
	}()
	wg.Wait()
	fmt.Printf("%s queue moved %d items\n", kind, c.items)
}

func runFIFO(c *config) {
	f := syncx.NewFIFO[int]()
	var wg sync.WaitGroup
	for w := range c.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range c.items {
				f.Enqueue(w*c.items + i)
			}
		}()
	}
	wg.Wait()
	fmt.Printf("fifo holds %d items after %d concurrent producers\n", f.Count(), c.workers)

	drained := 0
	for {
		if _, err := f.Dequeue(); syncx.IsWouldBlock(err) {
			break
		}
		drained++
	}
	fmt.Printf("drained %d items, empty=%t\n", drained, f.IsEmpty())
}

func runBarrier(c *config) {
	b := syncx.NewCyclicBarrier(c.workers)
	var wg sync.WaitGroup
	for w := range c.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cycle := range 2 {
				time.Sleep(time.Duration(rand.IntN(50)) * time.Millisecond)
				c.printf("  worker %d waits at barrier (cycle %d)\n", w, cycle)
				idx := b.Wait()
				c.printf("  worker %d passed (cycle %d, arrival %d)\n", w, cycle, idx)
			}
		}()
	}
	wg.Wait()
	fmt.Printf("barrier completed %d cycles with %d parties\n", b.Generation(), b.Parties())
}

func runGate(c *config) {
	g := syncx.NewRWGate("initial data")
	var wg sync.WaitGroup
	for r := range c.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 3 {
				g.Read(func(v string) {
					c.printf("  reader %d reads %q\n", r, v)
					time.Sleep(20 * time.Millisecond)
				})
			}
		}()
	}
	for w := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 2 {
				g.Update(func(old string) string {
					c.printf("  writer %d replaces %q\n", w, old)
					time.Sleep(30 * time.Millisecond)
					return fmt.Sprintf("data from writer %d-%d", w, j)
				})
			}
		}()
	}
	wg.Wait()
	fmt.Printf("final value %q\n", g.Load())
}

func runReduce(c *config) {
	xs := make([]float64, c.size)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	for _, op := range []syncx.Op{syncx.Sum, syncx.Product} {
		for _, w := range []int{1, c.workers} {
			start := time.Now()
			r := syncx.Reduce(xs, op, w)
			fmt.Printf("%-7s workers=%-3d result=%g (%v)\n", op, w, r, time.Since(start))
		}
	}
}

func runMatrix(c *config) {
	a, b := randomMatrix(c.size, c.size), randomMatrix(c.size, c.size)

	start := time.Now()
	serial, err := matrix.Mul(a, b)
	if err != nil {
		log.Fatalf("syncdemo: %v", err)
	}
	fmt.Printf("serial multiply   %dx%d: %v\n", c.size, c.size, time.Since(start))

	start = time.Now()
	parallel, err := matrix.ParallelMul(a, b, c.workers)
	if err != nil {
		log.Fatalf("syncdemo: %v", err)
	}
	fmt.Printf("parallel multiply %dx%d (workers=%d): %v, equal=%t\n",
		c.size, c.size, c.workers, time.Since(start), serial.Equal(parallel, 1e-9))
}

func runIntegrate(c *config) {
	n := max(c.size, 1)
	for _, m := range []integrate.Method{integrate.Rectangle, integrate.Trapezoid, integrate.Simpson} {
		for _, w := range []int{1, c.workers} {
			start := time.Now()
			pi := integrate.Pi(m, n, w)
			fmt.Printf("%-9s n=%-8d workers=%-3d pi=%.12f err=%.2e (%v)\n",
				m, n, w, pi, math.Abs(pi-math.Pi), time.Since(start))
		}
	}
}

func randomMatrix(rows, cols int) *matrix.Matrix {
	m := matrix.New(rows, cols)
	for i := range rows {
		for j := range cols {
			m.Set(i, j, rand.Float64()*10)
		}
	}
	return m
}
