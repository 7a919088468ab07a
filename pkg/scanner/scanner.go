// Package scanner walks a documentation source tree and produces the
// flat page records the sitemap builder folds into a navigation tree.
package scanner

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/docnav/pkg/config"
	"github.com/arthur-debert/docnav/pkg/errors"
	"github.com/arthur-debert/docnav/pkg/logging"
	"github.com/arthur-debert/docnav/pkg/types"
)

// pageExtensions lists the file extensions treated as pages.
var pageExtensions = map[string]bool{
	".md":   true,
	".htm":  true,
	".html": true,
}

// Scanner discovers documentation pages under a docs root.
type Scanner struct {
	root    string
	baseURL string
	exclude []string
	current string

	// sectionTitles collects per-directory title overrides found in
	// section config files, keyed by slash path relative to the root
	sectionTitles map[string]string

	logger zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithCurrent marks the page with the given relative path as the one
// currently being rendered.
func WithCurrent(relPath string) Option {
	return func(s *Scanner) {
		s.current = filepath.ToSlash(relPath)
	}
}

// New creates a Scanner for a docs root using the project configuration.
func New(root string, cfg *config.Config, opts ...Option) *Scanner {
	s := &Scanner{
		root:          root,
		baseURL:       strings.TrimRight(cfg.Site.BaseURL, "/"),
		exclude:       cfg.Exclude,
		sectionTitles: make(map[string]string),
		logger:        logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the docs root and returns one PageInfo per page file, in
// deterministic walk order. Hidden directories, directories marked
// hidden by their section config, and paths matching the exclude globs
// are skipped.
func (s *Scanner) Scan() ([]types.PageInfo, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrDocsNotFound, "docs root does not exist").
				WithDetail("path", s.root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access docs root").
			WithDetail("path", s.root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrDocsInvalid, "docs root is not a directory").
			WithDetail("path", s.root)
	}

	var pages []types.PageInfo
	docsFS := os.DirFS(s.root)

	err = fs.WalkDir(docsFS, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				s.logger.Trace().Str("dir", rel).Msg("Skipping hidden directory")
				return fs.SkipDir
			}
			section, err := config.LoadSectionConfig(filepath.Join(s.root, rel, config.SectionFileName))
			if err != nil {
				return err
			}
			if section.Hidden {
				s.logger.Debug().Str("dir", rel).Msg("Directory hidden by section config")
				return fs.SkipDir
			}
			if section.Title != "" {
				s.sectionTitles[rel] = section.Title
			}
			return nil
		}

		if !pageExtensions[strings.ToLower(path.Ext(rel))] {
			return nil
		}
		if s.isExcluded(rel) {
			s.logger.Trace().Str("path", rel).Msg("Path excluded by config")
			return nil
		}

		page := types.PageInfo{
			Path:    rel,
			URL:     s.pageURL(rel),
			Title:   s.pageTitle(rel),
			Current: rel == s.current,
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.DocnavError); ok {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to walk docs root").
			WithDetail("path", s.root)
	}

	s.logger.Debug().Int("pages", len(pages)).Str("root", s.root).Msg("Docs scan complete")
	return pages, nil
}

// SectionTitles returns the per-directory title overrides collected
// during the last Scan, for use with sitemap.OverrideTitles.
func (s *Scanner) SectionTitles() map[string]string {
	return s.sectionTitles
}

// isExcluded matches the relative path and its base name against the
// configured exclude globs.
func (s *Scanner) isExcluded(rel string) bool {
	for _, pattern := range s.exclude {
		if matched, _ := path.Match(pattern, rel); matched {
			return true
		}
		if matched, _ := path.Match(pattern, path.Base(rel)); matched {
			return true
		}
	}
	return false
}

// pageURL derives the serving URL for a page: base URL plus the
// relative path with markdown rewritten to html.
func (s *Scanner) pageURL(rel string) string {
	if strings.EqualFold(path.Ext(rel), ".md") {
		rel = strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
	}
	return s.baseURL + "/" + rel
}

// pageTitle extracts an explicit title for markdown pages; other
// formats fall back to the derived name.
func (s *Scanner) pageTitle(rel string) string {
	if !strings.EqualFold(path.Ext(rel), ".md") {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		s.logger.Debug().Err(err).Str("path", rel).Msg("Cannot read page for title extraction")
		return ""
	}
	return Title(data)
}
