package cmd

import (
	"context"
	"net/http"
	"strings"

	"github.com/foomo/keel"
	"github.com/foomo/keel/healthz"
	keelhttp "github.com/foomo/keel/net/http"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/foomo/showcase/pkg/handler"
	"github.com/foomo/showcase/pkg/store"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start http server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
				keel.WithPrometheusMeter(servicePrometheusEnabledFlag(v)),
				keel.WithGracefulPeriod(gracefulPeriodFlag(v)),
				keel.WithOTLPGRPCTracer(otelEnabledFlag(v)),
				keel.WithHTTPPProfService(servicePProfEnabledFlag(v)),
			)

			l := svr.Logger()

			s, err := createStore(cmd.Context(), v, l)
			if err != nil {
				return errors.Wrap(err, "failed to create store")
			}

			pingHealthzerFn := healthz.NewHealthzerFn(func(ctx context.Context) error {
				return s.Ping(ctx)
			})
			svr.AddStartupHealthzers(pingHealthzerFn)
			svr.AddReadinessHealthzers(pingHealthzerFn)

			svr.AddClosers(func(ctx context.Context) error {
				return s.Close()
			})

			svr.AddServices(
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					newHandler(v, l, s),
					middleware.Telemetry(),
					middleware.Logger(),
					middleware.GZip(middleware.GZipWithLevel(gzipLevelFlag(v))),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addAddressFlag(flags, v)
	addBasePathFlag(flags, v)
	addAdminPathFlag(flags, v)
	addAdminTokenFlag(flags, v)
	addCORSOriginsFlag(flags, v)
	addFeaturedLimitFlag(flags, v)
	addStoreTypeFlag(flags, v)
	addStoreURLFlag(flags, v)
	addStoreAPIKeyFlag(flags, v)
	addStoreTimeoutFlag(flags, v)
	addStoreDSNFlag(flags, v)
	addStoreMaxConnsFlag(flags, v)
	addStorageTypeFlag(flags, v)
	addStorageDirFlag(flags, v)
	addStorageBlobBucketFlag(flags, v)
	addStorageBlobPrefixFlag(flags, v)
	addHistoryLimitFlag(flags, v)
	addGracefulPeriodFlag(flags, v)
	addGzipLevelFlag(flags, v)
	addOtelEnabledFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)
	addServicePProfEnabledFlag(flags, v)

	return cmd
}

// newHandler mounts the public and the admin api behind CORS
func newHandler(v *viper.Viper, l *zap.Logger, s store.Store) http.Handler {
	basePath := strings.TrimSuffix(basePathFlag(v), "/")
	adminPath := strings.TrimSuffix(adminPathFlag(v), "/")

	mux := http.NewServeMux()
	mux.Handle(basePath+"/", handler.NewHTTP(l.Named("inst.handler"), s,
		handler.WithPath(basePath),
		handler.WithFeaturedLimit(featuredLimitFlag(v)),
	))
	if token := adminTokenFlag(v); token != "" {
		mux.Handle(adminPath+"/", handler.NewAdmin(l.Named("inst.admin"), s, token,
			handler.AdminWithPath(adminPath),
		))
	} else {
		l.Warn("admin token is not set, admin api is disabled")
	}

	return cors.New(cors.Options{
		AllowedOrigins: corsOriginsFlag(v),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(mux)
}

// createStore creates the data store based on the configuration
func createStore(ctx context.Context, v *viper.Viper, l *zap.Logger) (store.Store, error) {
	storeType := storeTypeFlag(v)
	l.Info("creating store", zap.String("type", storeType))

	switch storeType {
	case "rest", "":
		s, err := store.NewREST(l.Named("inst.store"), storeURLFlag(v), storeAPIKeyFlag(v),
			store.RESTWithHTTPClient(
				keelhttp.NewHTTPClient(
					keelhttp.HTTPClientWithTimeout(storeTimeoutFlag(v)),
					keelhttp.HTTPClientWithTelemetry(),
				),
			),
		)
		if err != nil {
			return nil, err
		}
		return store.Instrument("rest", s), nil
	case "postgres":
		if storeDSNFlag(v) == "" {
			return nil, errors.New("store dsn is required when store-type is 'postgres'")
		}
		s, err := store.NewPostgres(ctx, l.Named("inst.store"), storeDSNFlag(v),
			store.PostgresWithMaxConns(storeMaxConnsFlag(v)),
		)
		if err != nil {
			return nil, err
		}
		return store.Instrument("postgres", s), nil
	case "document":
		storage, err := createStorage(ctx, v, l)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create storage")
		}
		history := store.NewHistory(l.Named("inst.history"), storage,
			store.HistoryWithLimit(historyLimitFlag(v)),
		)
		return store.Instrument("document", store.NewDocument(l.Named("inst.store"), history)), nil
	default:
		return nil, errors.Errorf("unknown store type: %s (supported: rest, postgres, document)", storeType)
	}
}

// createStorage creates the storage of the document store based on the configuration
func createStorage(ctx context.Context, v *viper.Viper, l *zap.Logger) (store.Storage, error) {
	storageType := storageTypeFlag(v)
	blobBucket := storageBlobBucketFlag(v)
	blobPrefix := storageBlobPrefixFlag(v)

	if storageType != "blob" && (blobBucket != "" || blobPrefix != "") {
		l.Warn("blob storage flags are set but storage-type is not 'blob'; blob config will be ignored",
			zap.String("storage-type", storageType),
			zap.String("blob-bucket", blobBucket),
			zap.String("blob-prefix", blobPrefix),
		)
	}

	switch storageType {
	case "blob":
		if blobBucket == "" {
			return nil, errors.Errorf("blob bucket URL is required when storage-type is 'blob' (supported schemes: %s)",
				strings.Join(store.SupportedBlobSchemes, ", "))
		}
		if !isValidBlobScheme(blobBucket) {
			return nil, errors.Errorf("unsupported blob storage URL scheme in %q; supported schemes: %s",
				blobBucket, strings.Join(store.SupportedBlobSchemes, ", "))
		}
		l.Info("using blob storage",
			zap.String("bucket", blobBucket),
			zap.String("prefix", blobPrefix),
			zap.String("provider", detectBlobProvider(blobBucket)),
		)
		return store.OpenBlobStorage(ctx, blobBucket, store.BlobWithPrefix(blobPrefix))
	case "filesystem", "":
		dir := storageDirFlag(v)
		l.Info("using filesystem storage", zap.String("dir", dir))
		return store.NewFilesystemStorage(dir)
	default:
		return nil, errors.Errorf("unknown storage type: %s (supported: filesystem, blob)", storageType)
	}
}

// isValidBlobScheme checks if the bucket URL has a supported scheme
func isValidBlobScheme(bucketURL string) bool {
	for _, scheme := range store.SupportedBlobSchemes {
		if strings.HasPrefix(bucketURL, scheme) {
			return true
		}
	}
	return false
}

// detectBlobProvider returns a human-readable provider name from the URL scheme
func detectBlobProvider(bucketURL string) string {
	switch {
	case strings.HasPrefix(bucketURL, "gs://"):
		return "Google Cloud Storage"
	case strings.HasPrefix(bucketURL, "s3://"):
		return "AWS S3"
	case strings.HasPrefix(bucketURL, "azblob://"):
		return "Azure Blob Storage"
	default:
		return "unknown"
	}
}
