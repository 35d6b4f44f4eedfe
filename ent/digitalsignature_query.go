// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/netvendor/creditintake/ent/application"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/predicate"
)

// DigitalSignatureQuery is the builder for querying DigitalSignature entities.
type DigitalSignatureQuery struct {
	config
	ctx             *QueryContext
	order           []digitalsignature.OrderOption
	inters          []Interceptor
	predicates      []predicate.DigitalSignature
	withApplication *ApplicationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DigitalSignatureQuery builder.
func (dsq *DigitalSignatureQuery) Where(ps ...predicate.DigitalSignature) *DigitalSignatureQuery {
	dsq.predicates = append(dsq.predicates, ps...)
	return dsq
}

// Limit the number of records to be returned by this query.
func (dsq *DigitalSignatureQuery) Limit(limit int) *DigitalSignatureQuery {
	dsq.ctx.Limit = &limit
	return dsq
}

// Offset to start from.
func (dsq *DigitalSignatureQuery) Offset(offset int) *DigitalSignatureQuery {
	dsq.ctx.Offset = &offset
	return dsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dsq *DigitalSignatureQuery) Unique(unique bool) *DigitalSignatureQuery {
	dsq.ctx.Unique = &unique
	return dsq
}

// Order specifies how the records should be ordered.
func (dsq *DigitalSignatureQuery) Order(o ...digitalsignature.OrderOption) *DigitalSignatureQuery {
	dsq.order = append(dsq.order, o...)
	return dsq
}

// QueryApplication chains the current query on the "application" edge.
func (dsq *DigitalSignatureQuery) QueryApplication() *ApplicationQuery {
	query := (&ApplicationClient{config: dsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(digitalsignature.Table, digitalsignature.FieldID, selector),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, digitalsignature.ApplicationTable, digitalsignature.ApplicationColumn),
		)
		fromU = sqlgraph.SetNeighbors(dsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DigitalSignature entity from the query.
// Returns a *NotFoundError when no DigitalSignature was found.
func (dsq *DigitalSignatureQuery) First(ctx context.Context) (*DigitalSignature, error) {
	nodes, err := dsq.Limit(1).All(setContextOp(ctx, dsq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{digitalsignature.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) FirstX(ctx context.Context) *DigitalSignature {
	node, err := dsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DigitalSignature ID from the query.
// Returns a *NotFoundError when no DigitalSignature ID was found.
func (dsq *DigitalSignatureQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(1).IDs(setContextOp(ctx, dsq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{digitalsignature.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DigitalSignature entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DigitalSignature entity is found.
// Returns a *NotFoundError when no DigitalSignature entities are found.
func (dsq *DigitalSignatureQuery) Only(ctx context.Context) (*DigitalSignature, error) {
	nodes, err := dsq.Limit(2).All(setContextOp(ctx, dsq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{digitalsignature.Label}
	default:
		return nil, &NotSingularError{digitalsignature.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) OnlyX(ctx context.Context) *DigitalSignature {
	node, err := dsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DigitalSignature ID in the query.
// Returns a *NotSingularError when more than one DigitalSignature ID is found.
// Returns a *NotFoundError when no entities are found.
func (dsq *DigitalSignatureQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(2).IDs(setContextOp(ctx, dsq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{digitalsignature.Label}
	default:
		err = &NotSingularError{digitalsignature.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DigitalSignatures.
func (dsq *DigitalSignatureQuery) All(ctx context.Context) ([]*DigitalSignature, error) {
	ctx = setContextOp(ctx, dsq.ctx, "All")
	if err := dsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DigitalSignature, *DigitalSignatureQuery]()
	return withInterceptors[[]*DigitalSignature](ctx, dsq, qr, dsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) AllX(ctx context.Context) []*DigitalSignature {
	nodes, err := dsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DigitalSignature IDs.
func (dsq *DigitalSignatureQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if dsq.ctx.Unique == nil && dsq.path != nil {
		dsq.Unique(true)
	}
	ctx = setContextOp(ctx, dsq.ctx, "IDs")
	if err = dsq.Select(digitalsignature.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := dsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dsq *DigitalSignatureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dsq.ctx, "Count")
	if err := dsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dsq, querierCount[*DigitalSignatureQuery](), dsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) CountX(ctx context.Context) int {
	count, err := dsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dsq *DigitalSignatureQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dsq.ctx, "Exist")
	switch _, err := dsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dsq *DigitalSignatureQuery) ExistX(ctx context.Context) bool {
	exist, err := dsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DigitalSignatureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dsq *DigitalSignatureQuery) Clone() *DigitalSignatureQuery {
	if dsq == nil {
		return nil
	}
	return &DigitalSignatureQuery{
		config:          dsq.config,
		ctx:             dsq.ctx.Clone(),
		order:           append([]digitalsignature.OrderOption{}, dsq.order...),
		inters:          append([]Interceptor{}, dsq.inters...),
		predicates:      append([]predicate.DigitalSignature{}, dsq.predicates...),
		withApplication: dsq.withApplication.Clone(),
		// clone intermediate query.
		sql:  dsq.sql.Clone(),
		path: dsq.path,
	}
}

// WithApplication tells the query-builder to eager-load the nodes that are connected to
// the "application" edge. The optional arguments are used to configure the query builder of the edge.
func (dsq *DigitalSignatureQuery) WithApplication(opts ...func(*ApplicationQuery)) *DigitalSignatureQuery {
	query := (&ApplicationClient{config: dsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dsq.withApplication = query
	return dsq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DigitalSignature.Query().
//		GroupBy(digitalsignature.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dsq *DigitalSignatureQuery) GroupBy(field string, fields ...string) *DigitalSignatureGroupBy {
	dsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DigitalSignatureGroupBy{build: dsq}
	grbuild.flds = &dsq.ctx.Fields
	grbuild.label = digitalsignature.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.DigitalSignature.Query().
//		Select(digitalsignature.FieldCreatedAt).
//		Scan(ctx, &v)
func (dsq *DigitalSignatureQuery) Select(fields ...string) *DigitalSignatureSelect {
	dsq.ctx.Fields = append(dsq.ctx.Fields, fields...)
	sbuild := &DigitalSignatureSelect{DigitalSignatureQuery: dsq}
	sbuild.label = digitalsignature.Label
	sbuild.flds, sbuild.scan = &dsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DigitalSignatureSelect configured with the given aggregations.
func (dsq *DigitalSignatureQuery) Aggregate(fns ...AggregateFunc) *DigitalSignatureSelect {
	return dsq.Select().Aggregate(fns...)
}

func (dsq *DigitalSignatureQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dsq); err != nil {
				return err
			}
		}
	}
	for _, f := range dsq.ctx.Fields {
		if !digitalsignature.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dsq.path != nil {
		prev, err := dsq.path(ctx)
		if err != nil {
			return err
		}
		dsq.sql = prev
	}
	return nil
}

func (dsq *DigitalSignatureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DigitalSignature, error) {
	var (
		nodes       = []*DigitalSignature{}
		_spec       = dsq.querySpec()
		loadedTypes = [1]bool{
			dsq.withApplication != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DigitalSignature).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DigitalSignature{config: dsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dsq.withApplication; query != nil {
		if err := dsq.loadApplication(ctx, query, nodes, nil,
			func(n *DigitalSignature, e *Application) { n.Edges.Application = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dsq *DigitalSignatureQuery) loadApplication(ctx context.Context, query *ApplicationQuery, nodes []*DigitalSignature, init func(*DigitalSignature), assign func(*DigitalSignature, *Application)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DigitalSignature)
	for i := range nodes {
		fk := nodes[i].ApplicationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(application.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "application_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (dsq *DigitalSignatureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dsq.querySpec()
	_spec.Node.Columns = dsq.ctx.Fields
	if len(dsq.ctx.Fields) > 0 {
		_spec.Unique = dsq.ctx.Unique != nil && *dsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dsq.driver, _spec)
}

func (dsq *DigitalSignatureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(digitalsignature.Table, digitalsignature.Columns, sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID))
	_spec.From = dsq.sql
	if unique := dsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dsq.path != nil {
		_spec.Unique = true
	}
	if fields := dsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, digitalsignature.FieldID)
		for i := range fields {
			if fields[i] != digitalsignature.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dsq.withApplication != nil {
			_spec.Node.AddColumnOnce(digitalsignature.FieldApplicationID)
		}
	}
	if ps := dsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dsq *DigitalSignatureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dsq.driver.Dialect())
	t1 := builder.Table(digitalsignature.Table)
	columns := dsq.ctx.Fields
	if len(columns) == 0 {
		columns = digitalsignature.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dsq.sql != nil {
		selector = dsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dsq.ctx.Unique != nil && *dsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dsq.predicates {
		p(selector)
	}
	for _, p := range dsq.order {
		p(selector)
	}
	if offset := dsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DigitalSignatureGroupBy is the group-by builder for DigitalSignature entities.
type DigitalSignatureGroupBy struct {
	selector
	build *DigitalSignatureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dsgb *DigitalSignatureGroupBy) Aggregate(fns ...AggregateFunc) *DigitalSignatureGroupBy {
	dsgb.fns = append(dsgb.fns, fns...)
	return dsgb
}

// Scan applies the selector query and scans the result into the given value.
func (dsgb *DigitalSignatureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dsgb.build.ctx, "GroupBy")
	if err := dsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DigitalSignatureQuery, *DigitalSignatureGroupBy](ctx, dsgb.build, dsgb, dsgb.build.inters, v)
}

func (dsgb *DigitalSignatureGroupBy) sqlScan(ctx context.Context, root *DigitalSignatureQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dsgb.fns))
	for _, fn := range dsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dsgb.flds)+len(dsgb.fns))
		for _, f := range *dsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DigitalSignatureSelect is the builder for selecting fields of DigitalSignature entities.
type DigitalSignatureSelect struct {
	*DigitalSignatureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dss *DigitalSignatureSelect) Aggregate(fns ...AggregateFunc) *DigitalSignatureSelect {
	dss.fns = append(dss.fns, fns...)
	return dss
}

// Scan applies the selector query and scans the result into the given value.
func (dss *DigitalSignatureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dss.ctx, "Select")
	if err := dss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DigitalSignatureQuery, *DigitalSignatureSelect](ctx, dss.DigitalSignatureQuery, dss, dss.inters, v)
}

func (dss *DigitalSignatureSelect) sqlScan(ctx context.Context, root *DigitalSignatureQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dss.fns))
	for _, fn := range dss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
