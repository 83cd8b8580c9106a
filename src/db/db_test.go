package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestNewDBInstallsSharedInstance(t *testing.T) {
	conn, _, err := sqlmock.New()
	assert.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	assert.NoError(t, err)

	NewDB(gdb)

	assert.Same(t, gdb, GetDb())
	assert.Equal(t, "postgres", GetDb().Name())
}
