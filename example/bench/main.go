package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"bytestring"
)

// init routes logrus output to stdout for easier log capture.
func init() {
	logrus.SetOutput(os.Stdout)
}

func main() {
	total := flag.Int("n", 100000, "total payloads to render")
	size := flag.Int("size", 256, "payload size in bytes")
	concurrency := flag.Int("c", 8, "concurrency")
	corrupt := flag.Float64("corrupt", 0.1, "fraction of bytes forced invalid")
	mode := flag.String("mode", "display", "display or debug")
	flag.Parse()

	payloads := makePayloads(64, *size, *corrupt)

	var okCount int64
	var errCount int64
	start := time.Now()

	var wg sync.WaitGroup
	ch := make(chan int, *total)
	for i := 0; i < *total; i++ {
		ch <- i
	}
	close(ch)

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range ch {
				v := bytestring.New(payloads[idx%len(payloads)])
				var err error
				switch *mode {
				case "debug":
					err = v.WriteDebug(io.Discard)
				default:
					err = v.WriteDisplay(io.Discard, bytestring.Options{
						Align: bytestring.AlignRight,
						Width: *size,
					})
				}
				if err != nil {
					atomic.AddInt64(&errCount, 1)
					continue
				}
				atomic.AddInt64(&okCount, 1)
			}
		}()
	}
	wg.Wait()

	elapsed := time.Since(start)
	logrus.WithFields(logrus.Fields{
		"mode":    *mode,
		"ok":      atomic.LoadInt64(&okCount),
		"errors":  atomic.LoadInt64(&errCount),
		"elapsed": elapsed,
		"per_sec": float64(*total) / elapsed.Seconds(),
	}).Info("render benchmark finished")
}

// makePayloads builds a fixed pool of payloads, corrupting the requested
// fraction of bytes so the chunk traversal sees both valid and invalid runs.
func makePayloads(count, size int, corrupt float64) [][]byte {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	payloads := make([][]byte, count)
	for i := range payloads {
		p := make([]byte, size)
		for j := range p {
			p[j] = byte('a' + rng.Intn(26))
			if rng.Float64() < corrupt {
				p[j] = 0xFF
			}
		}
		payloads[i] = p
	}
	return payloads
}
