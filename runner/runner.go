// Package runner ties the engine together: it loads the dictionary and the
// bonus layout once, and solves board and rack pairs, singly or in batches.
package runner

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/cache"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/equity"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/movegen"
	"github.com/crossplay/bestword/store"
)

// SolveRequest is a board, one text row per line, and a rack.
type SolveRequest struct {
	Board []string `json:"board" yaml:"board"`
	Rack  string   `json:"rack" yaml:"rack"`
	// Method overrides the configured search method.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
}

type SolveResponse struct {
	Move        *move.Move `json:"move" yaml:"move"`
	Description string     `json:"description" yaml:"description"`
	Cached      bool       `json:"cached" yaml:"cached"`
	ElapsedMs   int64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Solver is safe for concurrent use: each search gets its own generator,
// and the dictionary, lexicon, calculator and store are shared.
type Solver struct {
	cfg     *config.Config
	opts    SolverOptions
	dict    *lexicon.Dictionary
	lex     lexicon.Lexicon
	matcher *anagrammer.Matcher
	calc    equity.Calculator
	store   *store.Store
}

// NewSolver loads everything a search needs. A missing dictionary is an
// error, never an empty word list.
func NewSolver(ctx context.Context, cfg *config.Config, opts SolverOptions) (*Solver, error) {
	opts.SetDefaults(cfg)
	if err := opts.SetMethod(opts.Method); err != nil {
		return nil, err
	}
	dict, err := cache.Load(cfg, "dictionary:"+cfg.DictionaryPath(), lexicon.CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	var lex lexicon.Lexicon = dict
	if name := cfg.GetString(config.ConfigLexicon); name != "" {
		kl, err := cache.Load(cfg, "kwg:"+name, kwgLoadFunc)
		if err != nil {
			return nil, err
		}
		lex = kl
	}
	calc, err := equity.NewCalculator(cfg)
	if err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:     cfg,
		opts:    opts,
		dict:    dict,
		lex:     lex,
		matcher: anagrammer.NewMatcher(dict),
		calc:    calc,
	}
	if path := cfg.GetString(config.ConfigResultsDB); path != "" {
		s.store, err = store.Open(ctx, path)
		if err != nil {
			return nil, err
		}
	}
	log.Info().Str("dictionary", dict.Name()).Str("lexicon", lex.Name()).
		Str("method", opts.Method).Str("calculator", calc.Type()).Msg("solver-ready")
	return s, nil
}

func kwgLoadFunc(cfg *config.Config, key string) (*lexicon.KWGLexicon, error) {
	name, ok := strings.CutPrefix(key, "kwg:")
	if !ok {
		return nil, errors.New("kwg load func - bad cache key: " + key)
	}
	return lexicon.NewKWGLexicon(cfg.WGLConfig(), name)
}

func (s *Solver) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func (s *Solver) Options() SolverOptions {
	return s.opts
}

func (s *Solver) Dictionary() *lexicon.Dictionary {
	return s.dict
}

func (s *Solver) Lexicon() lexicon.Lexicon {
	return s.lex
}

func (s *Solver) Calculator() equity.Calculator {
	return s.calc
}

func (s *Solver) Matcher() *anagrammer.Matcher {
	return s.matcher
}

// NewGenerator builds a fresh generator for method, or the configured one
// if method is empty.
func (s *Solver) NewGenerator(method string) (movegen.MoveGenerator, error) {
	if method == "" {
		method = s.opts.Method
	}
	return movegen.NewGenerator(method, s.matcher, s.lex, s.calc, s.opts.TopK)
}

// ParseRack reads a rack, honoring the blank setting.
func (s *Solver) ParseRack(letters string) (*alphabet.Rack, error) {
	rack, err := alphabet.RackFromString(letters)
	if err != nil {
		return nil, err
	}
	rack.SetLiteralBlanks(s.opts.LiteralBlanks)
	return rack, nil
}

// SolveBoard finds the best move on b. b's tile probabilities are
// overwritten.
func (s *Solver) SolveBoard(b *board.Board, rack *alphabet.Rack) (*move.Move, error) {
	gen, err := s.NewGenerator("")
	if err != nil {
		return nil, err
	}
	return gen.GenAll(b, rack), nil
}

// Solve answers one request, from the store when it has seen it before.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (*SolveResponse, error) {
	start := time.Now()
	b, err := board.MakeBoard(req.Board)
	if err != nil {
		return nil, err
	}
	rack, err := s.ParseRack(req.Rack)
	if err != nil {
		return nil, err
	}
	method := req.Method
	if method == "" {
		method = s.opts.Method
	}
	hash := s.hash(b, rack, method)

	if s.store != nil {
		sol, err := s.store.Get(ctx, hash)
		if err == nil {
			log.Debug().Str("hash", hash).Msg("solution-from-store")
			return &SolveResponse{Move: sol.Move, Description: sol.Move.Describe(), Cached: true,
				ElapsedMs: time.Since(start).Milliseconds()}, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	gen, err := s.NewGenerator(method)
	if err != nil {
		return nil, err
	}
	m := gen.GenAll(b, rack)

	if s.store != nil {
		sol := &store.Solution{
			Hash:   hash,
			Board:  strings.Join(b.ToText(), "\n"),
			Rack:   rack.String(),
			Method: method,
			Move:   m,
		}
		if err := s.store.Put(ctx, sol); err != nil {
			log.Err(err).Str("hash", hash).Msg("storing-solution")
		}
	}
	return &SolveResponse{Move: m, Description: m.Describe(),
		ElapsedMs: time.Since(start).Milliseconds()}, nil
}

// SolveBatch solves the requests on up to Threads goroutines. Responses are
// in request order; the first error cancels the rest.
func (s *Solver) SolveBatch(ctx context.Context, reqs []SolveRequest) ([]*SolveResponse, error) {
	resps := make([]*SolveResponse, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Threads)
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp, err := s.Solve(ctx, reqs[i])
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			resps[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resps, nil
}

// hash identifies a search: the position, the rack, the method and every
// setting that changes the answer.
func (s *Solver) hash(b *board.Board, rack *alphabet.Rack, method string) string {
	h := xxhash.New()
	for _, part := range []string{
		strings.Join(b.ToText(), "\n"),
		rack.Hashable(),
		method,
		fmt.Sprint(s.opts.TopK),
		s.dict.Name(),
		s.lex.Name(),
		s.calc.Type(),
		s.cfg.BoardLayoutPath(),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
