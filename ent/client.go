// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/socralabs/socra/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/socralabs/socra/ent/conceptevent"
	"github.com/socralabs/socra/ent/exchangeevent"
	"github.com/socralabs/socra/ent/oraclerequestevent"
	"github.com/socralabs/socra/ent/sessionevent"
	"github.com/socralabs/socra/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConceptEvent is the client for interacting with the ConceptEvent builders.
	ConceptEvent *ConceptEventClient
	// ExchangeEvent is the client for interacting with the ExchangeEvent builders.
	ExchangeEvent *ExchangeEventClient
	// OracleRequestEvent is the client for interacting with the OracleRequestEvent builders.
	OracleRequestEvent *OracleRequestEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConceptEvent = NewConceptEventClient(c.config)
	c.ExchangeEvent = NewExchangeEventClient(c.config)
	c.OracleRequestEvent = NewOracleRequestEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ConceptEvent:       NewConceptEventClient(cfg),
		ExchangeEvent:      NewExchangeEventClient(cfg),
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
		Snapshot:           NewSnapshotClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ConceptEvent:       NewConceptEventClient(cfg),
		ExchangeEvent:      NewExchangeEventClient(cfg),
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
		Snapshot:           NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConceptEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ConceptEvent.Use(hooks...)
	c.ExchangeEvent.Use(hooks...)
	c.OracleRequestEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConceptEvent.Intercept(interceptors...)
	c.ExchangeEvent.Intercept(interceptors...)
	c.OracleRequestEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptEventMutation:
		return c.ConceptEvent.mutate(ctx, m)
	case *ExchangeEventMutation:
		return c.ExchangeEvent.mutate(ctx, m)
	case *OracleRequestEventMutation:
		return c.OracleRequestEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptEventClient is a client for the ConceptEvent schema.
type ConceptEventClient struct {
	config
}

// NewConceptEventClient returns a client for the ConceptEvent from the given config.
func NewConceptEventClient(c config) *ConceptEventClient {
	return &ConceptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptevent.Hooks(f(g(h())))`.
func (c *ConceptEventClient) Use(hooks ...Hook) {
	c.hooks.ConceptEvent = append(c.hooks.ConceptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptevent.Intercept(f(g(h())))`.
func (c *ConceptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptEvent = append(c.inters.ConceptEvent, interceptors...)
}

// Create returns a builder for creating a ConceptEvent entity.
func (c *ConceptEventClient) Create() *ConceptEventCreate {
	mutation := newConceptEventMutation(c.config, OpCreate)
	return &ConceptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptEvent entities.
func (c *ConceptEventClient) CreateBulk(builders ...*ConceptEventCreate) *ConceptEventCreateBulk {
	return &ConceptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptEventClient) MapCreateBulk(slice any, setFunc func(*ConceptEventCreate, int)) *ConceptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptEventCreateBulk{err: fmt.Errorf("calling to ConceptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptEvent.
func (c *ConceptEventClient) Update() *ConceptEventUpdate {
	mutation := newConceptEventMutation(c.config, OpUpdate)
	return &ConceptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptEventClient) UpdateOne(_m *ConceptEvent) *ConceptEventUpdateOne {
	mutation := newConceptEventMutation(c.config, OpUpdateOne, withConceptEvent(_m))
	return &ConceptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptEventClient) UpdateOneID(id int) *ConceptEventUpdateOne {
	mutation := newConceptEventMutation(c.config, OpUpdateOne, withConceptEventID(id))
	return &ConceptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptEvent.
func (c *ConceptEventClient) Delete() *ConceptEventDelete {
	mutation := newConceptEventMutation(c.config, OpDelete)
	return &ConceptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptEventClient) DeleteOne(_m *ConceptEvent) *ConceptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptEventClient) DeleteOneID(id int) *ConceptEventDeleteOne {
	builder := c.Delete().Where(conceptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptEventDeleteOne{builder}
}

// Query returns a query builder for ConceptEvent.
func (c *ConceptEventClient) Query() *ConceptEventQuery {
	return &ConceptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptEvent entity by its id.
func (c *ConceptEventClient) Get(ctx context.Context, id int) (*ConceptEvent, error) {
	return c.Query().Where(conceptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptEventClient) GetX(ctx context.Context, id int) *ConceptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptEventClient) Hooks() []Hook {
	return c.hooks.ConceptEvent
}

// Interceptors returns the client interceptors.
func (c *ConceptEventClient) Interceptors() []Interceptor {
	return c.inters.ConceptEvent
}

func (c *ConceptEventClient) mutate(ctx context.Context, m *ConceptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptEvent mutation op: %q", m.Op())
	}
}

// ExchangeEventClient is a client for the ExchangeEvent schema.
type ExchangeEventClient struct {
	config
}

// NewExchangeEventClient returns a client for the ExchangeEvent from the given config.
func NewExchangeEventClient(c config) *ExchangeEventClient {
	return &ExchangeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exchangeevent.Hooks(f(g(h())))`.
func (c *ExchangeEventClient) Use(hooks ...Hook) {
	c.hooks.ExchangeEvent = append(c.hooks.ExchangeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exchangeevent.Intercept(f(g(h())))`.
func (c *ExchangeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExchangeEvent = append(c.inters.ExchangeEvent, interceptors...)
}

// Create returns a builder for creating a ExchangeEvent entity.
func (c *ExchangeEventClient) Create() *ExchangeEventCreate {
	mutation := newExchangeEventMutation(c.config, OpCreate)
	return &ExchangeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExchangeEvent entities.
func (c *ExchangeEventClient) CreateBulk(builders ...*ExchangeEventCreate) *ExchangeEventCreateBulk {
	return &ExchangeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExchangeEventClient) MapCreateBulk(slice any, setFunc func(*ExchangeEventCreate, int)) *ExchangeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExchangeEventCreateBulk{err: fmt.Errorf("calling to ExchangeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExchangeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExchangeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExchangeEvent.
func (c *ExchangeEventClient) Update() *ExchangeEventUpdate {
	mutation := newExchangeEventMutation(c.config, OpUpdate)
	return &ExchangeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExchangeEventClient) UpdateOne(_m *ExchangeEvent) *ExchangeEventUpdateOne {
	mutation := newExchangeEventMutation(c.config, OpUpdateOne, withExchangeEvent(_m))
	return &ExchangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExchangeEventClient) UpdateOneID(id int) *ExchangeEventUpdateOne {
	mutation := newExchangeEventMutation(c.config, OpUpdateOne, withExchangeEventID(id))
	return &ExchangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExchangeEvent.
func (c *ExchangeEventClient) Delete() *ExchangeEventDelete {
	mutation := newExchangeEventMutation(c.config, OpDelete)
	return &ExchangeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExchangeEventClient) DeleteOne(_m *ExchangeEvent) *ExchangeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExchangeEventClient) DeleteOneID(id int) *ExchangeEventDeleteOne {
	builder := c.Delete().Where(exchangeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExchangeEventDeleteOne{builder}
}

// Query returns a query builder for ExchangeEvent.
func (c *ExchangeEventClient) Query() *ExchangeEventQuery {
	return &ExchangeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExchangeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExchangeEvent entity by its id.
func (c *ExchangeEventClient) Get(ctx context.Context, id int) (*ExchangeEvent, error) {
	return c.Query().Where(exchangeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExchangeEventClient) GetX(ctx context.Context, id int) *ExchangeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExchangeEventClient) Hooks() []Hook {
	return c.hooks.ExchangeEvent
}

// Interceptors returns the client interceptors.
func (c *ExchangeEventClient) Interceptors() []Interceptor {
	return c.inters.ExchangeEvent
}

func (c *ExchangeEventClient) mutate(ctx context.Context, m *ExchangeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExchangeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExchangeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExchangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExchangeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExchangeEvent mutation op: %q", m.Op())
	}
}

// OracleRequestEventClient is a client for the OracleRequestEvent schema.
type OracleRequestEventClient struct {
	config
}

// NewOracleRequestEventClient returns a client for the OracleRequestEvent from the given config.
func NewOracleRequestEventClient(c config) *OracleRequestEventClient {
	return &OracleRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oraclerequestevent.Hooks(f(g(h())))`.
func (c *OracleRequestEventClient) Use(hooks ...Hook) {
	c.hooks.OracleRequestEvent = append(c.hooks.OracleRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oraclerequestevent.Intercept(f(g(h())))`.
func (c *OracleRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OracleRequestEvent = append(c.inters.OracleRequestEvent, interceptors...)
}

// Create returns a builder for creating a OracleRequestEvent entity.
func (c *OracleRequestEventClient) Create() *OracleRequestEventCreate {
	mutation := newOracleRequestEventMutation(c.config, OpCreate)
	return &OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OracleRequestEvent entities.
func (c *OracleRequestEventClient) CreateBulk(builders ...*OracleRequestEventCreate) *OracleRequestEventCreateBulk {
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OracleRequestEventClient) MapCreateBulk(slice any, setFunc func(*OracleRequestEventCreate, int)) *OracleRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OracleRequestEventCreateBulk{err: fmt.Errorf("calling to OracleRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OracleRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Update() *OracleRequestEventUpdate {
	mutation := newOracleRequestEventMutation(c.config, OpUpdate)
	return &OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OracleRequestEventClient) UpdateOne(_m *OracleRequestEvent) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEvent(_m))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OracleRequestEventClient) UpdateOneID(id int) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEventID(id))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Delete() *OracleRequestEventDelete {
	mutation := newOracleRequestEventMutation(c.config, OpDelete)
	return &OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OracleRequestEventClient) DeleteOne(_m *OracleRequestEvent) *OracleRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OracleRequestEventClient) DeleteOneID(id int) *OracleRequestEventDeleteOne {
	builder := c.Delete().Where(oraclerequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OracleRequestEventDeleteOne{builder}
}

// Query returns a query builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Query() *OracleRequestEventQuery {
	return &OracleRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOracleRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OracleRequestEvent entity by its id.
func (c *OracleRequestEventClient) Get(ctx context.Context, id int) (*OracleRequestEvent, error) {
	return c.Query().Where(oraclerequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OracleRequestEventClient) GetX(ctx context.Context, id int) *OracleRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OracleRequestEventClient) Hooks() []Hook {
	return c.hooks.OracleRequestEvent
}

// Interceptors returns the client interceptors.
func (c *OracleRequestEventClient) Interceptors() []Interceptor {
	return c.inters.OracleRequestEvent
}

func (c *OracleRequestEventClient) mutate(ctx context.Context, m *OracleRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OracleRequestEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConceptEvent, ExchangeEvent, OracleRequestEvent, SessionEvent,
		Snapshot []ent.Hook
	}
	inters struct {
		ConceptEvent, ExchangeEvent, OracleRequestEvent, SessionEvent,
		Snapshot []ent.Interceptor
	}
)
