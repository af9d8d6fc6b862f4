package services

import (
	"fmt"
	"strings"
	"testing"

	"facebeat/app/db"
	"facebeat/app/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	gdb, err := db.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Song{}, &models.Score{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
