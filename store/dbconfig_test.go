package store

import (
	"encoding/base64"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testCACert = `-----BEGIN CERTIFICATE-----
MIIBszCCAV2gAwIBAgIUJf...test-only...
-----END CERTIFICATE-----`

func resetDBConfig(conn string) {
	viper.Reset()
	viper.Set("orm.conn", conn)
}

func TestLoadDBConfigDefaults(t *testing.T) {
	resetDBConfig("postgres://rescue@localhost/rescuemap")

	cfg, err := LoadDBConfig()
	assert.NoError(t, err)
	assert.Equal(t, SSLModeOff, cfg.SSLMode)
	assert.True(t, cfg.RejectUnauthorized)

	dsn, err := cfg.DSN()
	assert.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestLoadDBConfigMissingConn(t *testing.T) {
	viper.Reset()

	_, err := LoadDBConfig()
	assert.Error(t, err)
}

func TestLoadDBConfigCertificateImpliesCustomMode(t *testing.T) {
	resetDBConfig("postgres://rescue@db.example.com/rescuemap")
	viper.Set("db.ssl.cert", base64.StdEncoding.EncodeToString([]byte(testCACert)))

	cfg, err := LoadDBConfig()
	assert.NoError(t, err)
	assert.Equal(t, SSLModeCustom, cfg.SSLMode)
	assert.Equal(t, []byte(testCACert), cfg.CACert)

	dsn, err := cfg.DSN()
	assert.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=verify-ca")
	assert.Contains(t, dsn, "sslrootcert=")

	// the CA lands on disk for lib/pq to read
	idx := strings.Index(dsn, "sslrootcert=")
	path := dsn[idx+len("sslrootcert="):]
	if amp := strings.IndexAny(path, "& "); amp >= 0 {
		path = path[:amp]
	}
	written, err := ioutil.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, testCACert, string(written))
}

func TestLoadDBConfigInvalidCertificateEncoding(t *testing.T) {
	resetDBConfig("postgres://rescue@localhost/rescuemap")
	viper.Set("db.ssl.cert", "not base64!!!")

	_, err := LoadDBConfig()
	assert.Error(t, err)
}

func TestLoadDBConfigContradictions(t *testing.T) {
	resetDBConfig("postgres://rescue@localhost/rescuemap")
	viper.Set("db.ssl.mode", "off")
	viper.Set("db.ssl.cert", base64.StdEncoding.EncodeToString([]byte(testCACert)))

	_, err := LoadDBConfig()
	assert.Error(t, err, "certificate with ssl off must be rejected")

	resetDBConfig("postgres://rescue@localhost/rescuemap")
	viper.Set("db.ssl.mode", "custom")

	_, err = LoadDBConfig()
	assert.Error(t, err, "custom mode without certificate must be rejected")

	resetDBConfig("postgres://rescue@localhost/rescuemap")
	viper.Set("db.ssl.mode", "tolerant")

	_, err = LoadDBConfig()
	assert.Error(t, err, "unrecognized mode must be rejected")
}

func TestDSNRequireModeHonorsRejectUnauthorized(t *testing.T) {
	resetDBConfig("postgres://rescue@db.example.com/rescuemap")
	viper.Set("db.ssl.mode", "require")

	cfg, err := LoadDBConfig()
	assert.NoError(t, err)

	dsn, err := cfg.DSN()
	assert.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=verify-full")

	viper.Set("db.ssl.reject_unauthorized", false)

	cfg, err = LoadDBConfig()
	assert.NoError(t, err)

	dsn, err = cfg.DSN()
	assert.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=require")
}

func TestDSNStripsEmbeddedSSLMode(t *testing.T) {
	resetDBConfig("host=localhost user=rescue dbname=rescuemap sslmode=require")

	cfg, err := LoadDBConfig()
	assert.NoError(t, err)

	dsn, err := cfg.DSN()
	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(dsn, "sslmode="), "embedded sslmode must be replaced")
	assert.Contains(t, dsn, "sslmode=disable")
}
