// Package container provides dependency injection for the household-tracker
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"fjacquet/household-tracker/internal/config"
	"fjacquet/household-tracker/internal/export"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/records"
	"fjacquet/household-tracker/internal/store"
	"fjacquet/household-tracker/internal/trips"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	now         func() time.Time
	persistence store.Persistence
	records     *records.Store
	grouper     *trips.Grouper
	exporter    *export.Generator
}

// Option overrides a dependency the container would otherwise build itself.
type Option func(*Container)

// WithLogger injects the logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithPersistence injects the persistence backend instead of opening the
// configured one.
func WithPersistence(p store.Persistence) Option {
	return func(c *Container) { c.persistence = p }
}

// WithClock injects the clock used for new records and reports.
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	// Create logger first as it's needed by other components
	if c.logger == nil {
		c.logger = config.NewLogger(cfg)
	}

	if c.persistence == nil {
		p, err := store.New(cfg, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
		c.persistence = p
	}

	c.records = records.NewStore(c.logger, records.WithClock(c.now))
	c.grouper = trips.NewGrouper(c.logger)
	c.exporter = export.NewGenerator(c.logger, c.grouper, cfg.Report.CurrencySymbol)

	c.logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Storage.Backend))

	return c, nil
}

// Load replaces the in-memory collection with the persisted one.
func (c *Container) Load(ctx context.Context) error {
	recs, err := c.persistence.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	c.records.Replace(recs)
	return nil
}

// Save persists the in-memory collection.
func (c *Container) Save(ctx context.Context) error {
	if err := c.persistence.Save(ctx, c.records.All()); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRecords returns the in-memory record store.
func (c *Container) GetRecords() *records.Store {
	return c.records
}

// GetGrouper returns the trip grouper.
func (c *Container) GetGrouper() *trips.Grouper {
	return c.grouper
}

// GetExporter returns the export generator.
func (c *Container) GetExporter() *export.Generator {
	return c.exporter
}

// GetPersistence returns the persistence backend.
func (c *Container) GetPersistence() store.Persistence {
	return c.persistence
}

// Now returns the current time from the container's clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// Close releases the persistence backend.
func (c *Container) Close() error {
	if err := c.persistence.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
