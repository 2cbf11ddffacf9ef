package db

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Status reports the reachability of the document store.
type Status struct {
	Connected   bool     `json:"connected"`
	Database    string   `json:"database"`
	Collections []string `json:"collections,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Check pings the store and lists its collections.
func Check(ctx context.Context, database *mongo.Database) *Status {
	st := &Status{Database: database.Name()}

	if err := database.Client().Ping(ctx, readpref.Primary()); err != nil {
		st.Error = err.Error()
		return st
	}
	st.Connected = true

	names, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		st.Error = err.Error()
		return st
	}
	st.Collections = names
	return st
}

// HealthHandler returns a handler for the database health check endpoint.
func HealthHandler(database *mongo.Database) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		st := Check(ctx, database)
		if !st.Connected {
			return c.JSON(http.StatusServiceUnavailable, st)
		}
		return c.JSON(http.StatusOK, st)
	}
}
