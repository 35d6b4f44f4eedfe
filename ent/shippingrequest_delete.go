// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/shippingrequest"
)

// ShippingRequestDelete is the builder for deleting a ShippingRequest entity.
type ShippingRequestDelete struct {
	config
	hooks    []Hook
	mutation *ShippingRequestMutation
}

// Where appends a list predicates to the ShippingRequestDelete builder.
func (srd *ShippingRequestDelete) Where(ps ...predicate.ShippingRequest) *ShippingRequestDelete {
	srd.mutation.Where(ps...)
	return srd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (srd *ShippingRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, srd.sqlExec, srd.mutation, srd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (srd *ShippingRequestDelete) ExecX(ctx context.Context) int {
	n, err := srd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (srd *ShippingRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(shippingrequest.Table, sqlgraph.NewFieldSpec(shippingrequest.FieldID, field.TypeUUID))
	if ps := srd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, srd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	srd.mutation.done = true
	return affected, err
}

// ShippingRequestDeleteOne is the builder for deleting a single ShippingRequest entity.
type ShippingRequestDeleteOne struct {
	srd *ShippingRequestDelete
}

// Where appends a list predicates to the ShippingRequestDelete builder.
func (srdo *ShippingRequestDeleteOne) Where(ps ...predicate.ShippingRequest) *ShippingRequestDeleteOne {
	srdo.srd.mutation.Where(ps...)
	return srdo
}

// Exec executes the deletion query.
func (srdo *ShippingRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := srdo.srd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{shippingrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (srdo *ShippingRequestDeleteOne) ExecX(ctx context.Context) {
	if err := srdo.Exec(ctx); err != nil {
		panic(err)
	}
}
