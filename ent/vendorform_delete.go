// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/netvendor/creditintake/ent/predicate"
	"github.com/netvendor/creditintake/ent/vendorform"
)

// VendorFormDelete is the builder for deleting a VendorForm entity.
type VendorFormDelete struct {
	config
	hooks    []Hook
	mutation *VendorFormMutation
}

// Where appends a list predicates to the VendorFormDelete builder.
func (vfd *VendorFormDelete) Where(ps ...predicate.VendorForm) *VendorFormDelete {
	vfd.mutation.Where(ps...)
	return vfd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vfd *VendorFormDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vfd.sqlExec, vfd.mutation, vfd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vfd *VendorFormDelete) ExecX(ctx context.Context) int {
	n, err := vfd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vfd *VendorFormDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(vendorform.Table, sqlgraph.NewFieldSpec(vendorform.FieldID, field.TypeUUID))
	if ps := vfd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vfd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vfd.mutation.done = true
	return affected, err
}

// VendorFormDeleteOne is the builder for deleting a single VendorForm entity.
type VendorFormDeleteOne struct {
	vfd *VendorFormDelete
}

// Where appends a list predicates to the VendorFormDelete builder.
func (vfdo *VendorFormDeleteOne) Where(ps ...predicate.VendorForm) *VendorFormDeleteOne {
	vfdo.vfd.mutation.Where(ps...)
	return vfdo
}

// Exec executes the deletion query.
func (vfdo *VendorFormDeleteOne) Exec(ctx context.Context) error {
	n, err := vfdo.vfd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{vendorform.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vfdo *VendorFormDeleteOne) ExecX(ctx context.Context) {
	if err := vfdo.Exec(ctx); err != nil {
		panic(err)
	}
}
