// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/shippingrequest"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// DigitalSignature is the client for interacting with the DigitalSignature builders.
	DigitalSignature *DigitalSignatureClient
	// ShippingRequest is the client for interacting with the ShippingRequest builders.
	ShippingRequest *ShippingRequestClient
	// VendorForm is the client for interacting with the VendorForm builders.
	VendorForm *VendorFormClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.DigitalSignature = NewDigitalSignatureClient(c.config)
	c.ShippingRequest = NewShippingRequestClient(c.config)
	c.VendorForm = NewVendorFormClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		DigitalSignature: NewDigitalSignatureClient(cfg),
		ShippingRequest:  NewShippingRequestClient(cfg),
		VendorForm:       NewVendorFormClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		DigitalSignature: NewDigitalSignatureClient(cfg),
		ShippingRequest:  NewShippingRequestClient(cfg),
		VendorForm:       NewVendorFormClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
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
	c.Application.Use(hooks...)
	c.DigitalSignature.Use(hooks...)
	c.ShippingRequest.Use(hooks...)
	c.VendorForm.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Application.Intercept(interceptors...)
	c.DigitalSignature.Intercept(interceptors...)
	c.ShippingRequest.Intercept(interceptors...)
	c.VendorForm.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *DigitalSignatureMutation:
		return c.DigitalSignature.mutate(ctx, m)
	case *ShippingRequestMutation:
		return c.ShippingRequest.mutate(ctx, m)
	case *VendorFormMutation:
		return c.VendorForm.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(a *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(a))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id uuid.UUID) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(a *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id uuid.UUID) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id uuid.UUID) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySignature queries the signature edge of a Application.
func (c *ApplicationClient) QuerySignature(a *Application) *DigitalSignatureQuery {
	query := (&DigitalSignatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(digitalsignature.Table, digitalsignature.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, application.SignatureTable, application.SignatureColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVendorForms queries the vendor_forms edge of a Application.
func (c *ApplicationClient) QueryVendorForms(a *Application) *VendorFormQuery {
	query := (&VendorFormClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(vendorform.Table, vendorform.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.VendorFormsTable, application.VendorFormsColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// DigitalSignatureClient is a client for the DigitalSignature schema.
type DigitalSignatureClient struct {
	config
}

// NewDigitalSignatureClient returns a client for the DigitalSignature from the given config.
func NewDigitalSignatureClient(c config) *DigitalSignatureClient {
	return &DigitalSignatureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `digitalsignature.Hooks(f(g(h())))`.
func (c *DigitalSignatureClient) Use(hooks ...Hook) {
	c.hooks.DigitalSignature = append(c.hooks.DigitalSignature, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `digitalsignature.Intercept(f(g(h())))`.
func (c *DigitalSignatureClient) Intercept(interceptors ...Interceptor) {
	c.inters.DigitalSignature = append(c.inters.DigitalSignature, interceptors...)
}

// Create returns a builder for creating a DigitalSignature entity.
func (c *DigitalSignatureClient) Create() *DigitalSignatureCreate {
	mutation := newDigitalSignatureMutation(c.config, OpCreate)
	return &DigitalSignatureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DigitalSignature entities.
func (c *DigitalSignatureClient) CreateBulk(builders ...*DigitalSignatureCreate) *DigitalSignatureCreateBulk {
	return &DigitalSignatureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DigitalSignatureClient) MapCreateBulk(slice any, setFunc func(*DigitalSignatureCreate, int)) *DigitalSignatureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DigitalSignatureCreateBulk{err: fmt.Errorf("calling to DigitalSignatureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DigitalSignatureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DigitalSignatureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DigitalSignature.
func (c *DigitalSignatureClient) Update() *DigitalSignatureUpdate {
	mutation := newDigitalSignatureMutation(c.config, OpUpdate)
	return &DigitalSignatureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DigitalSignatureClient) UpdateOne(ds *DigitalSignature) *DigitalSignatureUpdateOne {
	mutation := newDigitalSignatureMutation(c.config, OpUpdateOne, withDigitalSignature(ds))
	return &DigitalSignatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DigitalSignatureClient) UpdateOneID(id uuid.UUID) *DigitalSignatureUpdateOne {
	mutation := newDigitalSignatureMutation(c.config, OpUpdateOne, withDigitalSignatureID(id))
	return &DigitalSignatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DigitalSignature.
func (c *DigitalSignatureClient) Delete() *DigitalSignatureDelete {
	mutation := newDigitalSignatureMutation(c.config, OpDelete)
	return &DigitalSignatureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DigitalSignatureClient) DeleteOne(ds *DigitalSignature) *DigitalSignatureDeleteOne {
	return c.DeleteOneID(ds.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DigitalSignatureClient) DeleteOneID(id uuid.UUID) *DigitalSignatureDeleteOne {
	builder := c.Delete().Where(digitalsignature.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DigitalSignatureDeleteOne{builder}
}

// Query returns a query builder for DigitalSignature.
func (c *DigitalSignatureClient) Query() *DigitalSignatureQuery {
	return &DigitalSignatureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDigitalSignature},
		inters: c.Interceptors(),
	}
}

// Get returns a DigitalSignature entity by its id.
func (c *DigitalSignatureClient) Get(ctx context.Context, id uuid.UUID) (*DigitalSignature, error) {
	return c.Query().Where(digitalsignature.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DigitalSignatureClient) GetX(ctx context.Context, id uuid.UUID) *DigitalSignature {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a DigitalSignature.
func (c *DigitalSignatureClient) QueryApplication(ds *DigitalSignature) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ds.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(digitalsignature.Table, digitalsignature.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, digitalsignature.ApplicationTable, digitalsignature.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(ds.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DigitalSignatureClient) Hooks() []Hook {
	return c.hooks.DigitalSignature
}

// Interceptors returns the client interceptors.
func (c *DigitalSignatureClient) Interceptors() []Interceptor {
	return c.inters.DigitalSignature
}

func (c *DigitalSignatureClient) mutate(ctx context.Context, m *DigitalSignatureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DigitalSignatureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DigitalSignatureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DigitalSignatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DigitalSignatureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DigitalSignature mutation op: %q", m.Op())
	}
}

// ShippingRequestClient is a client for the ShippingRequest schema.
type ShippingRequestClient struct {
	config
}

// NewShippingRequestClient returns a client for the ShippingRequest from the given config.
func NewShippingRequestClient(c config) *ShippingRequestClient {
	return &ShippingRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shippingrequest.Hooks(f(g(h())))`.
func (c *ShippingRequestClient) Use(hooks ...Hook) {
	c.hooks.ShippingRequest = append(c.hooks.ShippingRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shippingrequest.Intercept(f(g(h())))`.
func (c *ShippingRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ShippingRequest = append(c.inters.ShippingRequest, interceptors...)
}

// Create returns a builder for creating a ShippingRequest entity.
func (c *ShippingRequestClient) Create() *ShippingRequestCreate {
	mutation := newShippingRequestMutation(c.config, OpCreate)
	return &ShippingRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ShippingRequest entities.
func (c *ShippingRequestClient) CreateBulk(builders ...*ShippingRequestCreate) *ShippingRequestCreateBulk {
	return &ShippingRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShippingRequestClient) MapCreateBulk(slice any, setFunc func(*ShippingRequestCreate, int)) *ShippingRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShippingRequestCreateBulk{err: fmt.Errorf("calling to ShippingRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShippingRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShippingRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ShippingRequest.
func (c *ShippingRequestClient) Update() *ShippingRequestUpdate {
	mutation := newShippingRequestMutation(c.config, OpUpdate)
	return &ShippingRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShippingRequestClient) UpdateOne(sr *ShippingRequest) *ShippingRequestUpdateOne {
	mutation := newShippingRequestMutation(c.config, OpUpdateOne, withShippingRequest(sr))
	return &ShippingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShippingRequestClient) UpdateOneID(id uuid.UUID) *ShippingRequestUpdateOne {
	mutation := newShippingRequestMutation(c.config, OpUpdateOne, withShippingRequestID(id))
	return &ShippingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ShippingRequest.
func (c *ShippingRequestClient) Delete() *ShippingRequestDelete {
	mutation := newShippingRequestMutation(c.config, OpDelete)
	return &ShippingRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShippingRequestClient) DeleteOne(sr *ShippingRequest) *ShippingRequestDeleteOne {
	return c.DeleteOneID(sr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShippingRequestClient) DeleteOneID(id uuid.UUID) *ShippingRequestDeleteOne {
	builder := c.Delete().Where(shippingrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShippingRequestDeleteOne{builder}
}

// Query returns a query builder for ShippingRequest.
func (c *ShippingRequestClient) Query() *ShippingRequestQuery {
	return &ShippingRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShippingRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ShippingRequest entity by its id.
func (c *ShippingRequestClient) Get(ctx context.Context, id uuid.UUID) (*ShippingRequest, error) {
	return c.Query().Where(shippingrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShippingRequestClient) GetX(ctx context.Context, id uuid.UUID) *ShippingRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ShippingRequestClient) Hooks() []Hook {
	return c.hooks.ShippingRequest
}

// Interceptors returns the client interceptors.
func (c *ShippingRequestClient) Interceptors() []Interceptor {
	return c.inters.ShippingRequest
}

func (c *ShippingRequestClient) mutate(ctx context.Context, m *ShippingRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShippingRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShippingRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShippingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShippingRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ShippingRequest mutation op: %q", m.Op())
	}
}

// VendorFormClient is a client for the VendorForm schema.
type VendorFormClient struct {
	config
}

// NewVendorFormClient returns a client for the VendorForm from the given config.
func NewVendorFormClient(c config) *VendorFormClient {
	return &VendorFormClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vendorform.Hooks(f(g(h())))`.
func (c *VendorFormClient) Use(hooks ...Hook) {
	c.hooks.VendorForm = append(c.hooks.VendorForm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vendorform.Intercept(f(g(h())))`.
func (c *VendorFormClient) Intercept(interceptors ...Interceptor) {
	c.inters.VendorForm = append(c.inters.VendorForm, interceptors...)
}

// Create returns a builder for creating a VendorForm entity.
func (c *VendorFormClient) Create() *VendorFormCreate {
	mutation := newVendorFormMutation(c.config, OpCreate)
	return &VendorFormCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VendorForm entities.
func (c *VendorFormClient) CreateBulk(builders ...*VendorFormCreate) *VendorFormCreateBulk {
	return &VendorFormCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VendorFormClient) MapCreateBulk(slice any, setFunc func(*VendorFormCreate, int)) *VendorFormCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VendorFormCreateBulk{err: fmt.Errorf("calling to VendorFormClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VendorFormCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VendorFormCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VendorForm.
func (c *VendorFormClient) Update() *VendorFormUpdate {
	mutation := newVendorFormMutation(c.config, OpUpdate)
	return &VendorFormUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VendorFormClient) UpdateOne(vf *VendorForm) *VendorFormUpdateOne {
	mutation := newVendorFormMutation(c.config, OpUpdateOne, withVendorForm(vf))
	return &VendorFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VendorFormClient) UpdateOneID(id uuid.UUID) *VendorFormUpdateOne {
	mutation := newVendorFormMutation(c.config, OpUpdateOne, withVendorFormID(id))
	return &VendorFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VendorForm.
func (c *VendorFormClient) Delete() *VendorFormDelete {
	mutation := newVendorFormMutation(c.config, OpDelete)
	return &VendorFormDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VendorFormClient) DeleteOne(vf *VendorForm) *VendorFormDeleteOne {
	return c.DeleteOneID(vf.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VendorFormClient) DeleteOneID(id uuid.UUID) *VendorFormDeleteOne {
	builder := c.Delete().Where(vendorform.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VendorFormDeleteOne{builder}
}

// Query returns a query builder for VendorForm.
func (c *VendorFormClient) Query() *VendorFormQuery {
	return &VendorFormQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVendorForm},
		inters: c.Interceptors(),
	}
}

// Get returns a VendorForm entity by its id.
func (c *VendorFormClient) Get(ctx context.Context, id uuid.UUID) (*VendorForm, error) {
	return c.Query().Where(vendorform.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VendorFormClient) GetX(ctx context.Context, id uuid.UUID) *VendorForm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a VendorForm.
func (c *VendorFormClient) QueryApplication(vf *VendorForm) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := vf.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vendorform.Table, vendorform.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vendorform.ApplicationTable, vendorform.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(vf.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VendorFormClient) Hooks() []Hook {
	return c.hooks.VendorForm
}

// Interceptors returns the client interceptors.
func (c *VendorFormClient) Interceptors() []Interceptor {
	return c.inters.VendorForm
}

func (c *VendorFormClient) mutate(ctx context.Context, m *VendorFormMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VendorFormCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VendorFormUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VendorFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VendorFormDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VendorForm mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, DigitalSignature, ShippingRequest, VendorForm []ent.Hook
	}
	inters struct {
		Application, DigitalSignature, ShippingRequest, VendorForm []ent.Interceptor
	}
)
