package database

import (
	"context"
	"log"
	"testing"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

func TestMain(m *testing.M) {
	teardown, _, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestHealth(t *testing.T) {
	stats := testDBInstance.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	if err := testDBInstance.Migrate(); err != nil {
		t.Fatalf("re-running migration failed: %v", err)
	}
}

func TestSeedFixturesPresent(t *testing.T) {
	if TestJobFeatured.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("featured fixture listing was not seeded")
	}
	if TestCompany1.ID == TestCompany2.ID {
		t.Fatal("fixture companies collide")
	}
}
