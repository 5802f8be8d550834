// Package queryflow provides a top-level convenience entry point for wiring
// the query/retrieval pipeline with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/queryflow"
//
//	eng, err := queryflow.New(store, queryflow.WithConfig(cfg))
//	res, err := eng.Retrieval(ctx, &search.RetrievalRequest{Question: q, Emb: emb})
//
// The engine owns one process-wide tokenizer dictionary and synonym table;
// everything else is created per request.
package queryflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/queryflow/config"
	"github.com/BaSui01/queryflow/internal/metrics"
	"github.com/BaSui01/queryflow/query"
	"github.com/BaSui01/queryflow/search"
	"github.com/BaSui01/queryflow/synonym"
	"github.com/BaSui01/queryflow/tokenizer"
)

// Engine bundles the tokenizer, synonym resolver, query compiler and
// retrieval dealer behind one handle.
type Engine struct {
	Tokenizer *tokenizer.Tokenizer
	Synonyms  *synonym.Resolver
	Queryer   *query.FulltextQueryer
	Dealer    *search.Dealer
}

// Retrieval runs a full retrieval request against the wired dealer.
func (e *Engine) Retrieval(ctx context.Context, req *search.RetrievalRequest) (*search.RetrievalResult, error) {
	return e.Dealer.Retrieval(ctx, req)
}

type options struct {
	cfg       *config.Config
	logger    *zap.Logger
	source    synonym.Source
	collector *metrics.Collector
}

// Option configures the engine created by [New].
type Option func(*options)

// WithConfig supplies a full configuration. Defaults are used otherwise.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSynonymSource sets a hot-refresh source for the synonym table.
func WithSynonymSource(src synonym.Source) Option {
	return func(o *options) { o.source = src }
}

// WithMetrics attaches a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// New wires the full pipeline on top of the given document store.
func New(store search.DocStore, opts ...Option) (*Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg == nil {
		o.cfg = config.DefaultConfig()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if store == nil {
		return nil, fmt.Errorf("queryflow: nil document store")
	}

	tok := tokenizer.New(tokenizer.Config{
		DictPath:     o.cfg.Tokenizer.DictPath,
		UserDictPath: o.cfg.Tokenizer.UserDictPath,
	}, o.logger)

	src := o.source
	if src == nil && o.cfg.Synonym.RedisEnabled {
		rs, err := synonym.NewRedisSource(synonym.RedisConfig{
			Addr:       o.cfg.Redis.Addr,
			Password:   o.cfg.Redis.Password,
			DB:         o.cfg.Redis.DB,
			Key:        o.cfg.Redis.Key,
			MaxRetries: o.cfg.Redis.MaxRetries,
			PoolSize:   o.cfg.Redis.PoolSize,
		}, o.logger)
		if err != nil {
			return nil, fmt.Errorf("queryflow: synonym redis source: %w", err)
		}
		src = rs
	}
	synOpts := []synonym.Option{}
	if src != nil {
		synOpts = append(synOpts, synonym.WithSource(src))
	}
	syn := synonym.New(synonym.Config{
		DictPath:        o.cfg.Synonym.DictPath,
		RefreshInterval: o.cfg.Synonym.RefreshInterval,
	}, o.logger, synOpts...)

	tw := query.NewDictTermWeighter(tok, tok)
	qryr := query.NewFulltextQueryer(tok, syn, tw, o.logger)

	dealerOpts := []search.DealerOption{}
	if o.collector != nil {
		dealerOpts = append(dealerOpts, search.WithMetrics(o.collector))
	}
	dealer := search.NewDealer(store, qryr, tok, o.logger, dealerOpts...)

	return &Engine{
		Tokenizer: tok,
		Synonyms:  syn,
		Queryer:   qryr,
		Dealer:    dealer,
	}, nil
}
