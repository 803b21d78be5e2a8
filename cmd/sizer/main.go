package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/TV4/graceful"
	gorilla "github.com/gorilla/handlers"
	"github.com/namsral/flag"
	elastic "gopkg.in/olivere/elastic.v6"

	"github.com/searchops/es-index-sizer/pkg/elasticsearch"
	"github.com/searchops/es-index-sizer/pkg/handlers"
	"github.com/searchops/es-index-sizer/pkg/logger"
)

var (
	// Build number populated during build
	Build string
	// Git commit number populated during build
	Commit string
)

func main() {
	var (
		url          = flag.String("es_url", "http://localhost:9200", "Elasticsearch URL.")
		user         = flag.String("es_user", "", "Elasticsearch User.")
		pass         = flag.String("es_password", "", "Elasticsearch User Password.")
		timeout      = flag.Duration("es_timeout", 5*time.Minute, "Timeout for Elasticsearch requests.")
		sniffEnabled = flag.Bool("es_sniff", false, "Enable Elasticsearch sniffing")
		interval     = flag.Duration("interval", 24*time.Hour, "Period between sizing runs")
		once         = flag.Bool("once", false, "Run a single sizing pass and exit")
		listen       = flag.String("listen", ":9000", "TCP network address for metrics and health checks.")
		statsEnabled = flag.Bool("stats", true, "Expose Prometheus metrics endpoint")
		versionFlag  = flag.Bool("version", false, "Version")
		debug        = flag.Bool("debug", false, "Debug logging")
	)
	flag.Parse()

	log := logger.NewLogger(*debug)

	if *versionFlag {
		fmt.Println("Commit:", Commit)
		fmt.Println("Build:", Build)
		return
	}

	log.Info(fmt.Sprintf("Starting commit: %+v, build: %+v", Commit, Build))

	if *url == "" {
		log.Fatal("missing url")
	}

	ctx := context.TODO()

	client, err := elastic.NewClient(
		elastic.SetURL(*url),
		elastic.SetBasicAuth(*user, *pass),
		elastic.SetSniff(*sniffEnabled),
	)
	if err != nil {
		log.Fatal("Failed to create elastic client", zap.Error(err))
	}
	defer client.Stop()

	clusterSvc := elasticsearch.NewClusterService(log, client, &elasticsearch.ClusterConfig{
		Timeout: *timeout,
	})

	sizerCfg := &elasticsearch.SizerConfig{
		Interval: *interval,
		Stats:    *statsEnabled,
	}
	if *once {
		sizerCfg.Interval = 0
	}
	sizerSvc := elasticsearch.NewSizerService(ctx, log, clusterSvc, sizerCfg)

	if err := sizerSvc.Run(ctx); err != nil {
		if *once {
			log.Fatal("Sizing run failed", zap.Error(err))
		}
		log.Error("Initial sizing run failed", zap.Error(err))
	}
	if *once {
		return
	}

	graceful.ListenAndServe(&http.Server{
		Addr: *listen,
		Handler: gorilla.RecoveryHandler(gorilla.PrintRecoveryStack(true))(
			gorilla.CompressHandler(
				handlers.NewAdminRouter(client),
			),
		),
	})
}
