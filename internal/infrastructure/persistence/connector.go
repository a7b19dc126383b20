package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"travel-explorer-service/internal/domain/repository"
	docRepo "travel-explorer-service/internal/interface/repository"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"
)

// State is the connector lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateAvailable
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// Supported drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Options configures Connect.
type Options struct {
	URL     string
	Name    string
	Driver  string // empty means infer from URL scheme
	Timeout time.Duration
}

// Status is a diagnostic snapshot of the connector.
type Status struct {
	State        State    `json:"state"`
	Available    bool     `json:"available"`
	DatabaseName string   `json:"database_name,omitempty"`
	Collections  []string `json:"reachable_collections"`
	ProbeError   string   `json:"probe_error,omitempty"`
}

// Connector owns the document store handle for the lifetime of the process.
// It is connected at most once; an unavailable connector stays unavailable.
type Connector struct {
	once   sync.Once
	state  State
	store  repository.DocumentStore
	closer func(context.Context) error
	logger logger.Logger
}

// NewConnector creates an uninitialized connector
func NewConnector(log logger.Logger) *Connector {
	return &Connector{logger: log}
}

// NewConnectorWithStore creates a connector already available on store
func NewConnectorWithStore(store repository.DocumentStore, log logger.Logger) *Connector {
	c := &Connector{logger: log}
	c.once.Do(func() {
		c.state = StateAvailable
		c.store = store
	})
	return c
}

// Connect dials the configured store. Failures leave the connector unavailable
// and are returned for logging only; the caller is expected to keep running.
func (c *Connector) Connect(ctx context.Context, opts Options) error {
	err := errors.New("connector already initialized")
	c.once.Do(func() {
		err = c.connect(ctx, opts)
		if err != nil {
			c.state = StateUnavailable
			c.logger.Warn("Document store unavailable", "error", err)
			return
		}
		c.state = StateAvailable
		c.logger.Info("Document store connected", "driver", driverFor(opts), "database", opts.Name)
	})
	return err
}

func (c *Connector) connect(ctx context.Context, opts Options) error {
	if opts.URL == "" || opts.Name == "" {
		return errors.New("DATABASE_URL and DATABASE_NAME must both be set")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	switch driver := driverFor(opts); driver {
	case DriverMongo:
		client, err := NewMongoClient(ctx, opts.URL, opts.Timeout)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		c.store = docRepo.NewMongoDocumentRepository(GetDatabase(client, opts.Name))
		c.closer = client.Disconnect
	case DriverPostgres:
		db, err := NewPostgresDB(ctx, opts.URL, opts.Timeout)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		store, err := docRepo.NewGormDocumentRepository(db, opts.Name)
		if err != nil {
			return err
		}
		sqlDB, _ := db.DB()
		c.store = store
		c.closer = func(context.Context) error { return sqlDB.Close() }
	case DriverMemory:
		c.store = docRepo.NewMemoryDocumentRepository(opts.Name)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	return nil
}

func driverFor(opts Options) string {
	if opts.Driver != "" {
		return strings.ToLower(opts.Driver)
	}
	switch {
	case strings.HasPrefix(opts.URL, "mongodb://"), strings.HasPrefix(opts.URL, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(opts.URL, "postgres://"), strings.HasPrefix(opts.URL, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(opts.URL, "memory://"):
		return DriverMemory
	}
	return DriverMongo
}

// State returns the lifecycle state
func (c *Connector) State() State {
	return c.state
}

// Handle returns the live store or apperr.ErrStorageUnavailable
func (c *Connector) Handle() (repository.DocumentStore, error) {
	if c.state != StateAvailable || c.store == nil {
		return nil, apperr.ErrStorageUnavailable
	}
	return c.store, nil
}

// Describe reports availability and probes the store for collection names.
// It never fails; probe errors are reported in the returned Status.
func (c *Connector) Describe(ctx context.Context) (status Status) {
	status = Status{State: c.state, Collections: []string{}}

	store, err := c.Handle()
	if err != nil {
		return status
	}
	status.Available = true
	status.DatabaseName = store.Name()

	defer func() {
		if r := recover(); r != nil {
			status.ProbeError = fmt.Sprint(r)
		}
	}()

	names, err := store.ListCollections(ctx)
	if err != nil {
		status.ProbeError = err.Error()
		return status
	}
	if names != nil {
		status.Collections = names
	}
	return status
}

// Close releases the underlying client, if any
func (c *Connector) Close(ctx context.Context) error {
	if c.closer == nil {
		return nil
	}
	return c.closer(ctx)
}
