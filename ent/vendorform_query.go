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
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// VendorFormQuery is the builder for querying VendorForm entities.
type VendorFormQuery struct {
	config
	ctx             *QueryContext
	order           []vendorform.OrderOption
	inters          []Interceptor
	predicates      []predicate.VendorForm
	withApplication *ApplicationQuery
	withFKs         bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VendorFormQuery builder.
func (vfq *VendorFormQuery) Where(ps ...predicate.VendorForm) *VendorFormQuery {
	vfq.predicates = append(vfq.predicates, ps...)
	return vfq
}

// Limit the number of records to be returned by this query.
func (vfq *VendorFormQuery) Limit(limit int) *VendorFormQuery {
	vfq.ctx.Limit = &limit
	return vfq
}

// Offset to start from.
func (vfq *VendorFormQuery) Offset(offset int) *VendorFormQuery {
	vfq.ctx.Offset = &offset
	return vfq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vfq *VendorFormQuery) Unique(unique bool) *VendorFormQuery {
	vfq.ctx.Unique = &unique
	return vfq
}

// Order specifies how the records should be ordered.
func (vfq *VendorFormQuery) Order(o ...vendorform.OrderOption) *VendorFormQuery {
	vfq.order = append(vfq.order, o...)
	return vfq
}

// QueryApplication chains the current query on the "application" edge.
func (vfq *VendorFormQuery) QueryApplication() *ApplicationQuery {
	query := (&ApplicationClient{config: vfq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := vfq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := vfq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(vendorform.Table, vendorform.FieldID, selector),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vendorform.ApplicationTable, vendorform.ApplicationColumn),
		)
		fromU = sqlgraph.SetNeighbors(vfq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VendorForm entity from the query.
// Returns a *NotFoundError when no VendorForm was found.
func (vfq *VendorFormQuery) First(ctx context.Context) (*VendorForm, error) {
	nodes, err := vfq.Limit(1).All(setContextOp(ctx, vfq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vendorform.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vfq *VendorFormQuery) FirstX(ctx context.Context) *VendorForm {
	node, err := vfq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VendorForm ID from the query.
// Returns a *NotFoundError when no VendorForm ID was found.
func (vfq *VendorFormQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vfq.Limit(1).IDs(setContextOp(ctx, vfq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vendorform.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vfq *VendorFormQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := vfq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VendorForm entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VendorForm entity is found.
// Returns a *NotFoundError when no VendorForm entities are found.
func (vfq *VendorFormQuery) Only(ctx context.Context) (*VendorForm, error) {
	nodes, err := vfq.Limit(2).All(setContextOp(ctx, vfq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vendorform.Label}
	default:
		return nil, &NotSingularError{vendorform.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vfq *VendorFormQuery) OnlyX(ctx context.Context) *VendorForm {
	node, err := vfq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VendorForm ID in the query.
// Returns a *NotSingularError when more than one VendorForm ID is found.
// Returns a *NotFoundError when no entities are found.
func (vfq *VendorFormQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = vfq.Limit(2).IDs(setContextOp(ctx, vfq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vendorform.Label}
	default:
		err = &NotSingularError{vendorform.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vfq *VendorFormQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := vfq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VendorForms.
func (vfq *VendorFormQuery) All(ctx context.Context) ([]*VendorForm, error) {
	ctx = setContextOp(ctx, vfq.ctx, "All")
	if err := vfq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VendorForm, *VendorFormQuery]()
	return withInterceptors[[]*VendorForm](ctx, vfq, qr, vfq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vfq *VendorFormQuery) AllX(ctx context.Context) []*VendorForm {
	nodes, err := vfq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VendorForm IDs.
func (vfq *VendorFormQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if vfq.ctx.Unique == nil && vfq.path != nil {
		vfq.Unique(true)
	}
	ctx = setContextOp(ctx, vfq.ctx, "IDs")
	if err = vfq.Select(vendorform.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vfq *VendorFormQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := vfq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vfq *VendorFormQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vfq.ctx, "Count")
	if err := vfq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vfq, querierCount[*VendorFormQuery](), vfq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vfq *VendorFormQuery) CountX(ctx context.Context) int {
	count, err := vfq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vfq *VendorFormQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vfq.ctx, "Exist")
	switch _, err := vfq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vfq *VendorFormQuery) ExistX(ctx context.Context) bool {
	exist, err := vfq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VendorFormQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vfq *VendorFormQuery) Clone() *VendorFormQuery {
	if vfq == nil {
		return nil
	}
	return &VendorFormQuery{
		config:          vfq.config,
		ctx:             vfq.ctx.Clone(),
		order:           append([]vendorform.OrderOption{}, vfq.order...),
		inters:          append([]Interceptor{}, vfq.inters...),
		predicates:      append([]predicate.VendorForm{}, vfq.predicates...),
		withApplication: vfq.withApplication.Clone(),
		// clone intermediate query.
		sql:  vfq.sql.Clone(),
		path: vfq.path,
	}
}

// WithApplication tells the query-builder to eager-load the nodes that are connected to
// the "application" edge. The optional arguments are used to configure the query builder of the edge.
func (vfq *VendorFormQuery) WithApplication(opts ...func(*ApplicationQuery)) *VendorFormQuery {
	query := (&ApplicationClient{config: vfq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	vfq.withApplication = query
	return vfq
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
//	client.VendorForm.Query().
//		GroupBy(vendorform.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vfq *VendorFormQuery) GroupBy(field string, fields ...string) *VendorFormGroupBy {
	vfq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VendorFormGroupBy{build: vfq}
	grbuild.flds = &vfq.ctx.Fields
	grbuild.label = vendorform.Label
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
//	client.VendorForm.Query().
//		Select(vendorform.FieldCreatedAt).
//		Scan(ctx, &v)
func (vfq *VendorFormQuery) Select(fields ...string) *VendorFormSelect {
	vfq.ctx.Fields = append(vfq.ctx.Fields, fields...)
	sbuild := &VendorFormSelect{VendorFormQuery: vfq}
	sbuild.label = vendorform.Label
	sbuild.flds, sbuild.scan = &vfq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VendorFormSelect configured with the given aggregations.
func (vfq *VendorFormQuery) Aggregate(fns ...AggregateFunc) *VendorFormSelect {
	return vfq.Select().Aggregate(fns...)
}

func (vfq *VendorFormQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vfq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vfq); err != nil {
				return err
			}
		}
	}
	for _, f := range vfq.ctx.Fields {
		if !vendorform.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vfq.path != nil {
		prev, err := vfq.path(ctx)
		if err != nil {
			return err
		}
		vfq.sql = prev
	}
	return nil
}

func (vfq *VendorFormQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VendorForm, error) {
	var (
		nodes       = []*VendorForm{}
		withFKs     = vfq.withFKs
		_spec       = vfq.querySpec()
		loadedTypes = [1]bool{
			vfq.withApplication != nil,
		}
	)
	if vfq.withApplication != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, vendorform.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VendorForm).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VendorForm{config: vfq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vfq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := vfq.withApplication; query != nil {
		if err := vfq.loadApplication(ctx, query, nodes, nil,
			func(n *VendorForm, e *Application) { n.Edges.Application = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (vfq *VendorFormQuery) loadApplication(ctx context.Context, query *ApplicationQuery, nodes []*VendorForm, init func(*VendorForm), assign func(*VendorForm, *Application)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*VendorForm)
	for i := range nodes {
		if nodes[i].application_vendor_forms == nil {
			continue
		}
		fk := *nodes[i].application_vendor_forms
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
			return fmt.Errorf(`unexpected foreign-key "application_vendor_forms" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (vfq *VendorFormQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vfq.querySpec()
	_spec.Node.Columns = vfq.ctx.Fields
	if len(vfq.ctx.Fields) > 0 {
		_spec.Unique = vfq.ctx.Unique != nil && *vfq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vfq.driver, _spec)
}

func (vfq *VendorFormQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vendorform.Table, vendorform.Columns, sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID))
	_spec.From = vfq.sql
	if unique := vfq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vfq.path != nil {
		_spec.Unique = true
	}
	if fields := vfq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendorform.FieldID)
		for i := range fields {
			if fields[i] != vendorform.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := vfq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vfq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vfq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vfq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vfq *VendorFormQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vfq.driver.Dialect())
	t1 := builder.Table(vendorform.Table)
	columns := vfq.ctx.Fields
	if len(columns) == 0 {
		columns = vendorform.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vfq.sql != nil {
		selector = vfq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vfq.ctx.Unique != nil && *vfq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vfq.predicates {
		p(selector)
	}
	for _, p := range vfq.order {
		p(selector)
	}
	if offset := vfq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vfq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VendorFormGroupBy is the group-by builder for VendorForm entities.
type VendorFormGroupBy struct {
	selector
	build *VendorFormQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vfgb *VendorFormGroupBy) Aggregate(fns ...AggregateFunc) *VendorFormGroupBy {
	vfgb.fns = append(vfgb.fns, fns...)
	return vfgb
}

// Scan applies the selector query and scans the result into the given value.
func (vfgb *VendorFormGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vfgb.build.ctx, "GroupBy")
	if err := vfgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VendorFormQuery, *VendorFormGroupBy](ctx, vfgb.build, vfgb, vfgb.build.inters, v)
}

func (vfgb *VendorFormGroupBy) sqlScan(ctx context.Context, root *VendorFormQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vfgb.fns))
	for _, fn := range vfgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vfgb.flds)+len(vfgb.fns))
		for _, f := range *vfgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vfgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vfgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VendorFormSelect is the builder for selecting fields of VendorForm entities.
type VendorFormSelect struct {
	*VendorFormQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vfs *VendorFormSelect) Aggregate(fns ...AggregateFunc) *VendorFormSelect {
	vfs.fns = append(vfs.fns, fns...)
	return vfs
}

// Scan applies the selector query and scans the result into the given value.
func (vfs *VendorFormSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vfs.ctx, "Select")
	if err := vfs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VendorFormQuery, *VendorFormSelect](ctx, vfs.VendorFormQuery, vfs, vfs.inters, v)
}

func (vfs *VendorFormSelect) sqlScan(ctx context.Context, root *VendorFormQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vfs.fns))
	for _, fn := range vfs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vfs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vfs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
