// Package api serves a read-only status endpoint with the manager's
// latest state, for scripts and debugging.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/ItsNotGoodName/stupidwm/internal/build"
	"github.com/ItsNotGoodName/stupidwm/internal/bus"
	"github.com/ItsNotGoodName/stupidwm/internal/wm"
	"github.com/ItsNotGoodName/stupidwm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Cache holds the latest snapshot published on the bus. The manager
// publishes from its event loop; HTTP handlers read concurrently.
type Cache struct {
	mu   sync.RWMutex
	last wm.Snapshot
}

func NewCache() *Cache {
	c := &Cache{}
	bus.Subscribe("api.Cache", func(_ context.Context, event wm.Snapshot) error {
		c.mu.Lock()
		c.last = event
		c.mu.Unlock()
		return nil
	})
	return c
}

func (c *Cache) Snapshot() wm.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

type StateOutput struct {
	Body wm.Snapshot
}

// NewServer builds the status API as a supervised service.
func NewServer(addr string, cache *Cache) Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())

	api := humachi.New(r, huma.DefaultConfig("stupidwm", build.Current.Version))
	huma.Get(api, "/api/state", func(ctx context.Context, _ *struct{}) (*StateOutput, error) {
		return &StateOutput{Body: cache.Snapshot()}, nil
	})

	return Server{
		addr:    addr,
		handler: r,
	}
}

type Server struct {
	addr    string
	handler http.Handler
}

func (Server) String() string { return "api.Server" }

// Serve implements suture.Service.
func (s Server) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.handler}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		srv.Close()
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}
