// Package neo4j implements the graph.Store interface against a Neo4j
// database. Each operation acquires one read session, runs one Cypher query
// and releases the session on every exit path.
package neo4j

import (
	"context"
	"time"

	"newsgraph/internal/util"
	"newsgraph/pkg/graph"
	"newsgraph/pkg/logger"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// FulltextIndex is the full-text index over Company name and summary used by
// search_companies. It must exist in the target database:
//
//	CREATE FULLTEXT INDEX companyText IF NOT EXISTS
//	FOR (c:Company) ON EACH [c.name, c.summary]
const FulltextIndex = "companyText"

// Config carries the store endpoint and credentials, supplied once at
// process start.
type Config struct {
	URI      string
	Username string
	Password string
	// Database is the target database name; empty selects the server default.
	Database string
	// QueryTimeout bounds a single call against the store. Zero disables the
	// per-call deadline.
	QueryTimeout time.Duration
	// ConnectRetries bounds the startup connectivity probe.
	ConnectRetries int
}

// Store is a graph.Store backed by a Neo4j driver. The driver pools
// connections internally; Store itself holds no mutable state and is safe
// for concurrent use.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
}

var _ graph.Store = (*Store)(nil)

// NewStore connects to the configured Neo4j endpoint and verifies
// connectivity before returning.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, graph.NewStoreUnavailable("", err)
	}

	retries := cfg.ConnectRetries
	if retries <= 0 {
		retries = 1
	}
	err = util.RetryErrWithContext(ctx, retries, func(ctx context.Context) error {
		return driver.VerifyConnectivity(ctx)
	})
	if err != nil {
		_ = driver.Close(ctx)
		return nil, graph.NewStoreUnavailable("", err)
	}

	logger.Info("Connected to graph store", "uri", cfg.URI, "database", cfg.Database)

	return &Store{
		driver:   driver,
		database: cfg.Database,
		timeout:  cfg.QueryTimeout,
	}, nil
}

// Close releases the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return graph.NewStoreUnavailable("", err)
	}
	return nil
}

// read runs a single read query and feeds every record to scan. Store-side
// failures, including per-call timeouts, surface as StoreUnavailable so the
// caller knows a blind retry is safe.
func (s *Store) read(ctx context.Context, op, cypher string, params map[string]any, scan func(record *neo4j.Record) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return graph.NewStoreUnavailable(op, err)
	}

	for result.Next(ctx) {
		if err := scan(result.Record()); err != nil {
			return err
		}
	}
	if err := result.Err(); err != nil {
		return graph.NewStoreUnavailable(op, err)
	}
	return nil
}

func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

func recordFloat(record *neo4j.Record, key string) float64 {
	value, ok := record.Get(key)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// recordDate accepts the date representations Neo4j hands back depending on
// how the property was written: a Cypher date, a datetime, or a plain string.
func recordDate(record *neo4j.Record, key string) time.Time {
	value, ok := record.Get(key)
	if !ok {
		return time.Time{}
	}
	switch v := value.(type) {
	case dbtype.Date:
		return v.Time()
	case time.Time:
		return v
	case string:
		t, err := time.Parse(graph.DateFormat, v)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}
