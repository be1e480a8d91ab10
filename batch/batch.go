// Package batch fans independent glTF parses out across a bounded worker
// pool. A single Parser is single-threaded per asset (spec.md §5); batch
// achieves parallelism the way spec.md's Design Notes prescribe — one
// Parser instance per concurrent parse — using the teacher's own compute
// dispatch mechanism (engine/scene/scene.go's computePool) repurposed here
// for CPU-bound parsing instead of per-frame animation prep.
package batch

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/headbirdgames/fastgltf/gltf"
)

// Result is the outcome of parsing one path.
type Result struct {
	Path  string
	Asset *gltf.Asset
	Err   error
}

const (
	defaultMaxQueue    = 256
	defaultIdleTimeout = 1 * time.Second
)

// ParseAll parses every path in paths concurrently, using a fresh *gltf.Parser
// per path built from newOptions (called once per path so callers can vary
// options — e.g. the enabled extensions — per entry). Dispatch is by file
// name only: a path ending in ".glb" is parsed as a GLB container and
// anything else as standalone JSON; the file contents are not sniffed, so a
// GLB file under another name fails as invalid JSON. Results preserve the
// input order.
func ParseAll(paths []string, newOptions func(path string) []gltf.Option, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	pool := worker.NewDynamicWorkerPool(workers, defaultMaxQueue, defaultIdleTimeout)

	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx := i
		p := path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				parser := gltf.New(newOptions(p)...)
				asset, err := parseOne(parser, p)
				results[idx] = Result{Path: p, Asset: asset, Err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return results, nil
}

func parseOne(parser *gltf.Parser, path string) (*gltf.Asset, error) {
	if isGLBPath(path) {
		return parser.ParseGLBFile(path)
	}
	return parser.ParseJSONFile(path)
}

func isGLBPath(path string) bool {
	n := len(path)
	return n >= 4 && path[n-4:] == ".glb"
}
