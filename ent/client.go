// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/venturelab/venturesim/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/venturelab/venturesim/ent/llmrequestevent"
	"github.com/venturelab/venturesim/ent/mistakeevent"
	"github.com/venturelab/venturesim/ent/responseevent"
	"github.com/venturelab/venturesim/ent/snapshot"
	"github.com/venturelab/venturesim/ent/stageevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MistakeEvent is the client for interacting with the MistakeEvent builders.
	MistakeEvent *MistakeEventClient
	// ResponseEvent is the client for interacting with the ResponseEvent builders.
	ResponseEvent *ResponseEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// StageEvent is the client for interacting with the StageEvent builders.
	StageEvent *StageEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MistakeEvent = NewMistakeEventClient(c.config)
	c.ResponseEvent = NewResponseEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.StageEvent = NewStageEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MistakeEvent:    NewMistakeEventClient(cfg),
		ResponseEvent:   NewResponseEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StageEvent:      NewStageEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MistakeEvent:    NewMistakeEventClient(cfg),
		ResponseEvent:   NewResponseEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StageEvent:      NewStageEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.MistakeEvent.Use(hooks...)
	c.ResponseEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.StageEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MistakeEvent.Intercept(interceptors...)
	c.ResponseEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.StageEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MistakeEventMutation:
		return c.MistakeEvent.mutate(ctx, m)
	case *ResponseEventMutation:
		return c.ResponseEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StageEventMutation:
		return c.StageEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MistakeEventClient is a client for the MistakeEvent schema.
type MistakeEventClient struct {
	config
}

// NewMistakeEventClient returns a client for the MistakeEvent from the given config.
func NewMistakeEventClient(c config) *MistakeEventClient {
	return &MistakeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mistakeevent.Hooks(f(g(h())))`.
func (c *MistakeEventClient) Use(hooks ...Hook) {
	c.hooks.MistakeEvent = append(c.hooks.MistakeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mistakeevent.Intercept(f(g(h())))`.
func (c *MistakeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MistakeEvent = append(c.inters.MistakeEvent, interceptors...)
}

// Create returns a builder for creating a MistakeEvent entity.
func (c *MistakeEventClient) Create() *MistakeEventCreate {
	mutation := newMistakeEventMutation(c.config, OpCreate)
	return &MistakeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MistakeEvent entities.
func (c *MistakeEventClient) CreateBulk(builders ...*MistakeEventCreate) *MistakeEventCreateBulk {
	return &MistakeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MistakeEventClient) MapCreateBulk(slice any, setFunc func(*MistakeEventCreate, int)) *MistakeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MistakeEventCreateBulk{err: fmt.Errorf("calling to MistakeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MistakeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MistakeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MistakeEvent.
func (c *MistakeEventClient) Update() *MistakeEventUpdate {
	mutation := newMistakeEventMutation(c.config, OpUpdate)
	return &MistakeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MistakeEventClient) UpdateOne(_m *MistakeEvent) *MistakeEventUpdateOne {
	mutation := newMistakeEventMutation(c.config, OpUpdateOne, withMistakeEvent(_m))
	return &MistakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MistakeEventClient) UpdateOneID(id int) *MistakeEventUpdateOne {
	mutation := newMistakeEventMutation(c.config, OpUpdateOne, withMistakeEventID(id))
	return &MistakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MistakeEvent.
func (c *MistakeEventClient) Delete() *MistakeEventDelete {
	mutation := newMistakeEventMutation(c.config, OpDelete)
	return &MistakeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MistakeEventClient) DeleteOne(_m *MistakeEvent) *MistakeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MistakeEventClient) DeleteOneID(id int) *MistakeEventDeleteOne {
	builder := c.Delete().Where(mistakeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MistakeEventDeleteOne{builder}
}

// Query returns a query builder for MistakeEvent.
func (c *MistakeEventClient) Query() *MistakeEventQuery {
	return &MistakeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMistakeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MistakeEvent entity by its id.
func (c *MistakeEventClient) Get(ctx context.Context, id int) (*MistakeEvent, error) {
	return c.Query().Where(mistakeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MistakeEventClient) GetX(ctx context.Context, id int) *MistakeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MistakeEventClient) Hooks() []Hook {
	return c.hooks.MistakeEvent
}

// Interceptors returns the client interceptors.
func (c *MistakeEventClient) Interceptors() []Interceptor {
	return c.inters.MistakeEvent
}

func (c *MistakeEventClient) mutate(ctx context.Context, m *MistakeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MistakeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MistakeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MistakeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MistakeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MistakeEvent mutation op: %q", m.Op())
	}
}

// ResponseEventClient is a client for the ResponseEvent schema.
type ResponseEventClient struct {
	config
}

// NewResponseEventClient returns a client for the ResponseEvent from the given config.
func NewResponseEventClient(c config) *ResponseEventClient {
	return &ResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `responseevent.Hooks(f(g(h())))`.
func (c *ResponseEventClient) Use(hooks ...Hook) {
	c.hooks.ResponseEvent = append(c.hooks.ResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `responseevent.Intercept(f(g(h())))`.
func (c *ResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResponseEvent = append(c.inters.ResponseEvent, interceptors...)
}

// Create returns a builder for creating a ResponseEvent entity.
func (c *ResponseEventClient) Create() *ResponseEventCreate {
	mutation := newResponseEventMutation(c.config, OpCreate)
	return &ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResponseEvent entities.
func (c *ResponseEventClient) CreateBulk(builders ...*ResponseEventCreate) *ResponseEventCreateBulk {
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseEventClient) MapCreateBulk(slice any, setFunc func(*ResponseEventCreate, int)) *ResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseEventCreateBulk{err: fmt.Errorf("calling to ResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResponseEvent.
func (c *ResponseEventClient) Update() *ResponseEventUpdate {
	mutation := newResponseEventMutation(c.config, OpUpdate)
	return &ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseEventClient) UpdateOne(_m *ResponseEvent) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEvent(_m))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseEventClient) UpdateOneID(id int) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEventID(id))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResponseEvent.
func (c *ResponseEventClient) Delete() *ResponseEventDelete {
	mutation := newResponseEventMutation(c.config, OpDelete)
	return &ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseEventClient) DeleteOne(_m *ResponseEvent) *ResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseEventClient) DeleteOneID(id int) *ResponseEventDeleteOne {
	builder := c.Delete().Where(responseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseEventDeleteOne{builder}
}

// Query returns a query builder for ResponseEvent.
func (c *ResponseEventClient) Query() *ResponseEventQuery {
	return &ResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResponseEvent entity by its id.
func (c *ResponseEventClient) Get(ctx context.Context, id int) (*ResponseEvent, error) {
	return c.Query().Where(responseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseEventClient) GetX(ctx context.Context, id int) *ResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseEventClient) Hooks() []Hook {
	return c.hooks.ResponseEvent
}

// Interceptors returns the client interceptors.
func (c *ResponseEventClient) Interceptors() []Interceptor {
	return c.inters.ResponseEvent
}

func (c *ResponseEventClient) mutate(ctx context.Context, m *ResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResponseEvent mutation op: %q", m.Op())
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

// StageEventClient is a client for the StageEvent schema.
type StageEventClient struct {
	config
}

// NewStageEventClient returns a client for the StageEvent from the given config.
func NewStageEventClient(c config) *StageEventClient {
	return &StageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stageevent.Hooks(f(g(h())))`.
func (c *StageEventClient) Use(hooks ...Hook) {
	c.hooks.StageEvent = append(c.hooks.StageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stageevent.Intercept(f(g(h())))`.
func (c *StageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageEvent = append(c.inters.StageEvent, interceptors...)
}

// Create returns a builder for creating a StageEvent entity.
func (c *StageEventClient) Create() *StageEventCreate {
	mutation := newStageEventMutation(c.config, OpCreate)
	return &StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageEvent entities.
func (c *StageEventClient) CreateBulk(builders ...*StageEventCreate) *StageEventCreateBulk {
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageEventClient) MapCreateBulk(slice any, setFunc func(*StageEventCreate, int)) *StageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageEventCreateBulk{err: fmt.Errorf("calling to StageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageEvent.
func (c *StageEventClient) Update() *StageEventUpdate {
	mutation := newStageEventMutation(c.config, OpUpdate)
	return &StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageEventClient) UpdateOne(_m *StageEvent) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEvent(_m))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageEventClient) UpdateOneID(id int) *StageEventUpdateOne {
	mutation := newStageEventMutation(c.config, OpUpdateOne, withStageEventID(id))
	return &StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageEvent.
func (c *StageEventClient) Delete() *StageEventDelete {
	mutation := newStageEventMutation(c.config, OpDelete)
	return &StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageEventClient) DeleteOne(_m *StageEvent) *StageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageEventClient) DeleteOneID(id int) *StageEventDeleteOne {
	builder := c.Delete().Where(stageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageEventDeleteOne{builder}
}

// Query returns a query builder for StageEvent.
func (c *StageEventClient) Query() *StageEventQuery {
	return &StageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StageEvent entity by its id.
func (c *StageEventClient) Get(ctx context.Context, id int) (*StageEvent, error) {
	return c.Query().Where(stageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageEventClient) GetX(ctx context.Context, id int) *StageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StageEventClient) Hooks() []Hook {
	return c.hooks.StageEvent
}

// Interceptors returns the client interceptors.
func (c *StageEventClient) Interceptors() []Interceptor {
	return c.inters.StageEvent
}

func (c *StageEventClient) mutate(ctx context.Context, m *StageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, MistakeEvent, ResponseEvent, Snapshot, StageEvent []ent.Hook
	}
	inters struct {
		LLMRequestEvent, MistakeEvent, ResponseEvent, Snapshot,
		StageEvent []ent.Interceptor
	}
)
