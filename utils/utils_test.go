package utils

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestGetErrorData(t *testing.T) {
	type payload struct {
		LegalName    string `validate:"required"`
		ContactEmail string `validate:"required,email"`
	}

	validate := validator.New()

	t.Run("validation errors map to field detail", func(t *testing.T) {
		err := validate.Struct(payload{ContactEmail: "not-an-email"})
		assert.Error(t, err)

		errorData := GetErrorData(err)
		assert.Len(t, errorData, 2)

		fields := map[string]string{}
		for _, data := range errorData {
			fields[data.Field] = data.Message
		}
		assert.Equal(t, "This field is required", fields["LegalName"])
		assert.Equal(t, "Must be a valid email address", fields["ContactEmail"])
	})

	t.Run("other errors fall back to the message", func(t *testing.T) {
		errorData := GetErrorData(fmt.Errorf("unexpected EOF"))
		assert.Len(t, errorData, 1)
		assert.Equal(t, "", errorData[0].Field)
		assert.Equal(t, "unexpected EOF", errorData[0].Message)
	})
}

func TestStorageErrorStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unique violation", fmt.Errorf(`pq: duplicate key value violates unique constraint "digital_signatures_application_id_key"`), http.StatusConflict},
		{"foreign key violation", fmt.Errorf(`pq: insert or update violates foreign key constraint`), http.StatusNotFound},
		{"connection refused", fmt.Errorf("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable},
		{"database closed", fmt.Errorf("sql: database is closed"), http.StatusServiceUnavailable},
		{"anything else", fmt.Errorf("some driver hiccup"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := StorageErrorStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, message)
		})
	}
}
