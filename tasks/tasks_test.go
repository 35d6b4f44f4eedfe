package tasks

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/netvendor/creditintake/ent/enttest"
	db "github.com/netvendor/creditintake/storage"
	"github.com/netvendor/creditintake/utils/test"
)

func TestSweepExpiredShippingRequests(t *testing.T) {
	// Set up test database client
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	db.Client = client

	// One request well past the retention window, one fresh
	_, err := db.Client.ShippingRequest.
		Create().
		SetContactName("Old Request").
		SetContactEmail("old@acmeindustrial.com").
		SetAddressLine("1 Retired Way").
		SetCity("Houston").
		SetCountry("US").
		SetWeightKg(decimal.NewFromInt(5)).
		SetDeclaredValue(decimal.NewFromInt(100)).
		SetCreatedAt(time.Now().Add(-intakeConf.ShippingRetention - 24*time.Hour)).
		Save(context.Background())
	assert.NoError(t, err)

	fresh, err := test.CreateTestShippingRequest(map[string]interface{}{
		"contactName": "Fresh Request",
	})
	assert.NoError(t, err)

	err = SweepExpiredShippingRequests()
	assert.NoError(t, err)

	remaining, err := db.Client.ShippingRequest.Query().All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
