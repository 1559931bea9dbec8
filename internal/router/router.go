// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package router wires the pipeline: detect a citation's type, resolve
// it against the local store and external providers, and render it in
// the requested style. Callers always get a formatted string for
// non-empty input; completeness varies with cache and network
// availability and is reported through the unresolved-fields list.
package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caplane/citeflex/internal/detect"
	"github.com/caplane/citeflex/internal/enrich"
	"github.com/caplane/citeflex/internal/format"
	"github.com/caplane/citeflex/internal/landmark"
	"github.com/caplane/citeflex/internal/store"
	"github.com/caplane/citeflex/pkg/types"
)

// ErrEmptyInput marks input that is empty after trimming.
var ErrEmptyInput = errors.New("empty citation input")

// Result is the outcome of processing one citation string.
type Result struct {
	// Citation is the fully resolved record.
	Citation types.Citation

	// Formatted is the rendered citation.
	Formatted types.FormattedCitation

	// Unresolved lists fields the pipeline could not fill for this
	// citation type, for caller-level warnings.
	Unresolved []string

	// Warnings lists provider failures encountered during enrichment.
	Warnings []string

	// FromCache is true when the record came from the local store and
	// enrichment was skipped.
	FromCache bool
}

// Router is the pipeline's public entry point. Safe for concurrent use
// except for sessions, which are single-document.
type Router struct {
	detector *detect.Detector
	enricher *enrich.Coordinator
	store    *store.Store
	warn     io.Writer
}

// New builds a Router from pipeline configuration. An empty store path
// disables the local citation cache. Warnings are written to w.
func New(cfg types.PipelineConfig, w io.Writer) (*Router, error) {
	landmarks := landmark.New()

	var st *store.Store
	if cfg.Store.Path != "" {
		var err error
		st, err = store.Open(cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("opening citation store: %w", err)
		}
	}

	return &Router{
		detector: detect.New(landmarks),
		enricher: enrich.New(cfg.Enrich, landmarks, w),
		store:    st,
		warn:     w,
	}, nil
}

// Close releases the citation store, if one is open.
func (r *Router) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// Store exposes the citation store for cache maintenance commands. Nil
// when the store is disabled.
func (r *Router) Store() *store.Store { return r.store }

// Cite processes one citation string with no shorthand context.
func (r *Router) Cite(ctx context.Context, raw string, style types.CitationStyle) (Result, error) {
	return r.cite(ctx, raw, style, nil)
}

func (r *Router) cite(ctx context.Context, raw string, style types.CitationStyle, prior *types.Citation) (Result, error) {
	res, err := r.Resolve(ctx, raw)
	if err != nil {
		return Result{}, err
	}
	formatted, err := format.Format(res.Citation, style, prior)
	if err != nil {
		return Result{}, err
	}
	res.Formatted = formatted
	return res, nil
}

// Resolve detects and enriches one citation string without formatting
// it. The local store is consulted first; a fresh resolution is stored
// for next time.
func (r *Router) Resolve(ctx context.Context, raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}

	if r.store != nil {
		cached, ok, err := r.store.Get(raw)
		if err != nil {
			fmt.Fprintf(r.warn, "warning: citation store read failed: %v\n", err)
		} else if ok {
			return Result{
				Citation:   cached,
				Unresolved: unresolvedFields(cached),
				FromCache:  true,
			}, nil
		}
	}

	cit := r.detector.Detect(raw)
	out := r.enricher.Enrich(ctx, cit)

	if r.store != nil && out.Citation.HasMinimumData() {
		if err := r.store.Put(out.Citation); err != nil {
			fmt.Fprintf(r.warn, "warning: citation store write failed: %v\n", err)
		}
	}

	return Result{
		Citation:   out.Citation,
		Unresolved: unresolvedFields(out.Citation),
		Warnings:   out.Warnings,
	}, nil
}

// Session processes a document's citations in order, rendering
// consecutive repeats of a source in the style's shorthand form. Not
// safe for concurrent use; give each document its own.
type Session struct {
	router  *Router
	session *format.Session
}

// NewSession starts a document session in the given style.
func (r *Router) NewSession(style types.CitationStyle) *Session {
	return &Session{router: r, session: format.NewSession(style)}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.session.ID }

// Process resolves and renders the next citation in the document.
// Explicit shorthand markers ("Ibid.", "Id. at 652") skip resolution
// and re-render the previous citation.
func (s *Session) Process(ctx context.Context, raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}

	if _, ok := format.MatchIbid(raw); ok {
		formatted, err := s.session.Format(types.Citation{Raw: raw, Type: types.TypeUnknown})
		if err != nil {
			return Result{}, err
		}
		return Result{Formatted: formatted}, nil
	}

	res, err := s.router.Resolve(ctx, raw)
	if err != nil {
		return Result{}, err
	}
	formatted, err := s.session.Format(res.Citation)
	if err != nil {
		return Result{}, err
	}
	res.Formatted = formatted
	return res, nil
}

// unresolvedFields lists the fields a complete record of this type
// would carry but this one does not.
func unresolvedFields(c types.Citation) []string {
	var missing []string
	need := func(name, val string) {
		if val == "" {
			missing = append(missing, name)
		}
	}
	switch c.Type {
	case types.TypeLegal:
		need("case_name", c.CaseName)
		if c.Jurisdiction != "UK" {
			need("reporter_citation", c.ReporterCite())
			need("court", c.Court)
		} else {
			need("neutral_citation", c.NeutralCitation)
		}
		if c.Year == 0 {
			missing = append(missing, "year")
		}
	case types.TypeJournal, types.TypeMedical:
		if len(c.Authors) == 0 {
			missing = append(missing, "authors")
		}
		need("title", c.Title)
		need("publication", c.Publication)
		if c.Year == 0 {
			missing = append(missing, "year")
		}
	case types.TypeBook:
		if len(c.Authors) == 0 {
			missing = append(missing, "authors")
		}
		need("title", c.Title)
		need("publisher", c.Publisher)
		if c.Year == 0 {
			missing = append(missing, "year")
		}
	case types.TypeNewspaper:
		need("title", c.Title)
		need("publication", c.Publication)
		need("date", firstNonEmptyStr(c.Date, yearStr(c.Year)))
	case types.TypeGovernment:
		need("agency", c.Agency)
		need("title", c.Title)
	case types.TypeInterview:
		need("interviewee", c.Interviewee)
	}
	return missing
}

func firstNonEmptyStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func yearStr(y int) string {
	if y == 0 {
		return ""
	}
	return fmt.Sprintf("%d", y)
}
