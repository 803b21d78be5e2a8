package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	elastic "gopkg.in/olivere/elastic.v6"
)

// NewAdminRouter returns a configured http router for prom metrics and health checks
func NewAdminRouter(client *elastic.Client) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", prometheus.Handler())
	// creates /live and /ready endpoints
	mux.Handle("/", healthzHandler(client))
	return mux
}
