package engine

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Walk traverses the scan root and invokes handle for each eligible file.
// A root that is itself a regular file is handled directly.
func Walk(ctx context.Context, cfg Config, handle func(path string, data []byte)) error {
	if st, err := os.Stat(cfg.Root); err == nil && !st.IsDir() {
		if cfg.MaxBytes > 0 && st.Size() > cfg.MaxBytes {
			return nil
		}
		b, err := os.ReadFile(cfg.Root)
		if err != nil {
			return err
		}
		if !looksBinary(b) {
			handle(filepath.Base(cfg.Root), b)
		}
		return nil
	}

	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		info, _ := d.Info()
		if cfg.MaxBytes > 0 && info != nil && info.Size() > cfg.MaxBytes {
			return nil
		}
		// never scan our own cache db
		if d.Name() == ".pluckycache.json" {
			return nil
		}
		lower := strings.ToLower(rel)
		if cfg.DefaultExcludes && isDefaultFileExcluded(lower) {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		if looksBinary(b) || looksNonTextMIME(rel) {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// looksBinary sniffs a short prefix for NUL bytes. Undecodable text still
// scans; only clearly binary content is skipped.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// looksNonTextMIME skips clearly non-text content by extension (images,
// media, archives) in addition to NUL-byte detection.
func looksNonTextMIME(path string) bool {
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		return false
	}
	if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
		return true
	}
	return strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip")
}
