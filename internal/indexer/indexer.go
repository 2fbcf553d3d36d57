// Package indexer drives a full parse of a Doxygen XML directory: it reads
// the index, fans the compound documents out across workers and merges the
// resulting nodes into one registry.
package indexer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/zheng/doxgraph/internal/dispatch"
	"github.com/zheng/doxgraph/internal/doxml"
	"github.com/zheng/doxgraph/internal/graph"
	"github.com/zheng/doxgraph/internal/parser"
)

// parallelThreshold is the compound count below which a run parses
// sequentially. Decoding a handful of documents is cheaper than spinning up
// the pool.
const parallelThreshold = 20

// Indexer owns the state of one batch run: the input directory, the warning
// logger and the worker pool, which is created once and reused for the run.
type Indexer struct {
	dir  string
	log  *slog.Logger
	pool *dispatch.Pool
}

// New creates an indexer for the XML directory. Extra pool options (worker
// count overrides) are passed through.
func New(dir string, log *slog.Logger, opts ...dispatch.Option) *Indexer {
	opts = append([]dispatch.Option{dispatch.WithThreshold(parallelThreshold)}, opts...)
	return &Indexer{
		dir:  dir,
		log:  log,
		pool: dispatch.NewPool(opts...),
	}
}

// ParseAll reads the index document, parses every recognized compound and
// returns the merged, indexed registry. The first compound that fails to
// decode aborts the run; no partial output is produced.
func (ix *Indexer) ParseAll() (*graph.Registry, error) {
	index, err := doxml.LoadIndex(filepath.Join(ix.dir, "index.xml"))
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	ids := ix.filterCompounds(index)

	// Shuffle so compound size correlating with index position cannot skew
	// chunk load, and so nothing downstream grows to rely on the order.
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	p := parser.New(ix.dir, ix.log)
	reg := graph.NewRegistry()
	for _, res := range dispatch.Map(ix.pool, ids, p.ParseCompound) {
		if res.Err != nil {
			return nil, fmt.Errorf("parsing compound %s: %w", res.Item, res.Err)
		}
		reg.Add(res.Value...)
	}
	reg.Reindex()
	return reg, nil
}

// filterCompounds returns the ids worth parsing. Kinds known to carry no
// parseable content are skipped silently; anything unrecognized warns.
func (ix *Indexer) filterCompounds(index *doxml.Index) []string {
	var ids []string
	for _, compound := range index.Compounds {
		switch compound.Kind {
		case doxml.KindFile, doxml.KindGroup, doxml.KindStruct, doxml.KindClass, doxml.KindUnion:
			ids = append(ids, compound.RefID)
		case doxml.KindPage, doxml.KindDir, doxml.KindCategory, doxml.KindConcept, doxml.KindExample:
			// No parseable content.
		default:
			ix.log.Warn("unknown compound kind", "kind", compound.Kind, "refid", compound.RefID)
		}
	}
	return ids
}
