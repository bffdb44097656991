package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Storefront/internal/infrastructure/database"
)

// SetupTestMongo returns a fresh database for the test. It connects to
// MONGO_URL_TEST when set, otherwise it starts a mongo container. The test is
// skipped under -short or when no server can be reached.
func SetupTestMongo(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}

	ctx := context.Background()
	uri := os.Getenv("MONGO_URL_TEST")
	if uri == "" {
		container, err := tcmongo.Run(ctx, "mongo:7")
		if err != nil {
			t.Skipf("mongo container not available: %v", err)
		}
		t.Cleanup(func() {
			if err := container.Terminate(context.Background()); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})
		uri, err = container.ConnectionString(ctx)
		if err != nil {
			t.Fatalf("failed to get connection string: %v", err)
		}
	}

	client, err := database.NewMongoDBClient(ctx, uri, 30*time.Second)
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	db := client.Client.Database(fmt.Sprintf("storefront_test_%s", uuid.NewString()[:8]))
	if err := database.EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Logf("failed to drop test database: %v", err)
		}
		_ = client.Disconnect()
	})
	return db
}
