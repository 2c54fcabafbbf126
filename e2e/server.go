package e2e

import (
	"bytes"
	"log/slog"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	addresshandler "cadastro/internal/address/handler"
	addressservice "cadastro/internal/address/service"
	addressstore "cadastro/internal/address/store"
	personhandler "cadastro/internal/person/handler"
	personservice "cadastro/internal/person/service"
	personstore "cadastro/internal/person/store"
	"cadastro/internal/platform/middleware"
)

// newInProcessServer boots the full HTTP surface over fresh in-memory
// stores so the suite is self-contained when BASE_URL is unset. Metrics
// collectors are left out: they register globally and each scenario gets
// its own server.
func newInProcessServer() *httptest.Server {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	addresses := addressstore.NewMemory()
	persons := personstore.NewMemory(addresses.Exists)

	addressSvc := addressservice.New(addresses, addressservice.WithLogger(logger))
	personSvc := personservice.New(persons, addresses, personservice.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ContentTypeJSON)
	addresshandler.New(addressSvc, logger).Register(r)
	personhandler.New(personSvc, logger).Register(r)

	return httptest.NewServer(r)
}
