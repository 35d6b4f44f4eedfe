// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/netvendor/creditintake/ent/digitalsignature"
	"github.com/netvendor/creditintake/ent/predicate"
)

// DigitalSignatureDelete is the builder for deleting a DigitalSignature entity.
type DigitalSignatureDelete struct {
	config
	hooks    []Hook
	mutation *DigitalSignatureMutation
}

// Where appends a list predicates to the DigitalSignatureDelete builder.
func (dsd *DigitalSignatureDelete) Where(ps ...predicate.DigitalSignature) *DigitalSignatureDelete {
	dsd.mutation.Where(ps...)
	return dsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dsd *DigitalSignatureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dsd.sqlExec, dsd.mutation, dsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dsd *DigitalSignatureDelete) ExecX(ctx context.Context) int {
	n, err := dsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dsd *DigitalSignatureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(digitalsignature.Table, sqlgraph.NewFieldSpec(digitalsignature.FieldID, field.TypeUUID))
	if ps := dsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dsd.mutation.done = true
	return affected, err
}

// DigitalSignatureDeleteOne is the builder for deleting a single DigitalSignature entity.
type DigitalSignatureDeleteOne struct {
	dsd *DigitalSignatureDelete
}

// Where appends a list predicates to the DigitalSignatureDelete builder.
func (dsdo *DigitalSignatureDeleteOne) Where(ps ...predicate.DigitalSignature) *DigitalSignatureDeleteOne {
	dsdo.dsd.mutation.Where(ps...)
	return dsdo
}

// Exec executes the deletion query.
func (dsdo *DigitalSignatureDeleteOne) Exec(ctx context.Context) error {
	n, err := dsdo.dsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{digitalsignature.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dsdo *DigitalSignatureDeleteOne) ExecX(ctx context.Context) {
	if err := dsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
