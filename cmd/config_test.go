package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"supplychain/cmd"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	c := cmd.ConfigFromEnv(env(nil))

	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, postgres.DriverPostgres, c.DBDriver)
	assert.Equal(t, jobs.DefaultSnapshotSchedule, c.SnapshotSchedule)

	dir, err := c.Directory()
	require.NoError(t, err)
	assert.Equal(t, kernel.DefaultDirectory(), dir)

	require.Error(t, c.ValidateForServer())
}

func TestConfig_Directory(t *testing.T) {
	c := cmd.ConfigFromEnv(env(map[string]string{
		"ORG_PRODUCERS": "agr1MSP, agr2MSP",
		"ORG_COURIERS":  "dhlMSP",
	}))

	dir, err := c.Directory()
	require.NoError(t, err)
	assert.Equal(t, []kernel.OrgID{"agr1MSP", "agr2MSP"}, dir.Producers)
	assert.Equal(t, []kernel.OrgID{"dhlMSP"}, dir.Couriers)
	assert.Equal(t, kernel.DefaultDirectory().Clients, dir.Clients)

	c.Clients = " , "
	dir, err = c.Directory()
	require.NoError(t, err)
	assert.Equal(t, kernel.DefaultDirectory().Clients, dir.Clients)
}

func TestConfig_Connection(t *testing.T) {
	c := cmd.ConfigFromEnv(env(map[string]string{
		"DB_DRIVER": "sqlite",
		"DB_PATH":   "/tmp/ledger.db",
	}))
	assert.Equal(t, postgres.ConnectionConfig{Driver: postgres.DriverSQLite, DSN: "/tmp/ledger.db"}, c.Connection())

	c = cmd.ConfigFromEnv(env(map[string]string{
		"DB_HOST":     "db",
		"DB_USER":     "ledger",
		"DB_PASSWORD": "s3cret",
		"DB_NAME":     "supplychain",
		"JWT_SECRET":  "k",
	}))
	conn := c.Connection()
	assert.Equal(t, postgres.DriverPostgres, conn.Driver)
	assert.Equal(t, "host=db port=5432 user=ledger password=s3cret dbname=supplychain sslmode=disable", conn.DSN)
	require.NoError(t, c.ValidateForServer())
}

func TestCompositionRoot_CreateEcho(t *testing.T) {
	c := cmd.ConfigFromEnv(env(map[string]string{"JWT_SECRET": "k"}))

	app, err := cmd.NewCompositionRoot(c, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, app.CreateJobManager())

	e := app.CreateEcho()
	for _, path := range []string{"/health", "/metrics"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
