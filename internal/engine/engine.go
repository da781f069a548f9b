package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/plucky/plucky/internal/cache"
	"github.com/plucky/plucky/internal/extract"
	"github.com/plucky/plucky/internal/registry"
	"github.com/plucky/plucky/internal/types"
)

// Config controls scanning behavior including scope, selection, and filters.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	Threads         int
	Categories      string // comma-separated category names; empty = all
	Pattern         string // ad-hoc pattern unioned into the selection
	NoCache         bool
	DefaultExcludes bool
	Progress        func()
}

// Result contains matches and basic scan statistics.
type Result struct {
	Matches      []types.Match
	FilesScanned int
	Duration     time.Duration
}

// Categories returns the names of all registered categories, in registration
// order. This drives CLI flag enumeration and completion.
func Categories() []string {
	return registry.Default().Categories()
}

// Scan runs a scan and returns only matches (without stats).
func Scan(cfg Config) ([]types.Match, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Matches, nil
}

// ScanWithStats runs a scan and returns matches along with timing and counts.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result

	names := splitList(cfg.Categories)
	prog, err := extract.Compile(registry.Default(), names, cfg.Pattern)
	if err != nil {
		return result, err
	}
	fingerprint := strings.Join(names, ",") + "|" + cfg.Pattern

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root, fingerprint)
	} else {
		db = cache.DB{Selection: fingerprint, Entries: map[string]cache.Entry{}}
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	type fileJob struct {
		idx  int
		path string
		data []byte
	}

	var (
		mu      sync.Mutex
		perFile = map[int][]types.Match{}
		order   []string // path per idx
		hashes  []string // content hash per idx
	)

	jobs := make(chan fileJob)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				ms := scanOne(prog, j.path, j.data)
				mu.Lock()
				perFile[j.idx] = ms
				mu.Unlock()
			}
		}()
	}

	started := time.Now()
	walkErr := Walk(context.Background(), cfg, func(p string, data []byte) {
		idx := len(order)
		h := fastHash(data)
		order = append(order, p)
		hashes = append(hashes, h)
		if ent, ok := db.Entries[p]; ok && ent.Hash == h {
			mu.Lock()
			perFile[idx] = ent.Matches
			mu.Unlock()
		} else {
			jobs <- fileJob{idx: idx, path: p, data: data}
		}
		if cfg.Progress != nil {
			cfg.Progress()
		}
	})
	close(jobs)
	wg.Wait()
	if walkErr != nil {
		return result, fmt.Errorf("walk %s: %w", cfg.Root, walkErr)
	}

	updated := cache.DB{Selection: fingerprint, Entries: map[string]cache.Entry{}}
	for idx, p := range order {
		result.Matches = append(result.Matches, perFile[idx]...)
		updated.Entries[p] = cache.Entry{Hash: hashes[idx], Matches: perFile[idx]}
	}
	result.FilesScanned = len(order)
	result.Duration = time.Since(started)
	if !cfg.NoCache {
		_ = cache.Save(cfg.Root, updated)
	}
	return result, nil
}

func scanOne(prog *extract.Program, path string, data []byte) []types.Match {
	ms := extract.ScanBytes(prog, data).All()
	for i := range ms {
		ms[i].Path = path
	}
	return ms
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// allowedByGlobs returns true if the given path is allowed by the
// include/exclude glob configuration. Include globs are comma-separated and,
// if provided, act as a positive filter. Exclude globs are subtracted last.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
