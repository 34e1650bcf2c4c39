package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// PostgresCheck pings the relational store's connection pool.
func PostgresCheck(db *gorm.DB) Check {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// MongoCheck runs the ping command on the audit database.
func MongoCheck(db *mongo.Database) Check {
	return func(ctx context.Context) error {
		return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	}
}

// RedisCheck pings the session store.
func RedisCheck(rdb *redis.Client) Check {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}

// Probes serves the liveness and readiness endpoints.
type Probes struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewProbes returns probes over checks, keyed by dependency name.
func NewProbes(checks map[string]Check) *Probes {
	return &Probes{checks: checks, timeout: 3 * time.Second}
}

// Live always answers 200 while the process serves requests.
func (p *Probes) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readiness struct {
	Status       string                 `json:"status"`
	Dependencies map[string]checkResult `json:"dependencies"`
}

// Ready runs every check concurrently and answers 503 if any fails.
func (p *Probes) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), p.timeout)
	defer cancel()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = readiness{Status: "ok", Dependencies: make(map[string]checkResult, len(p.checks))}
	)
	for name, check := range p.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := checkResult{Status: "ok"}
			if err := check(ctx); err != nil {
				res = checkResult{Status: "unhealthy", Error: err.Error()}
			}
			mu.Lock()
			out.Dependencies[name] = res
			if res.Error != "" {
				out.Status = "degraded"
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	code := http.StatusOK
	if out.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, out)
}
