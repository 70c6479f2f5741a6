package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "SHOWCASE_ADDRESS")
}

func basePathFlag(v *viper.Viper) string {
	return v.GetString("base_path")
}

func addBasePathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("base-path", "/api", "Base path of the public api")
	_ = v.BindPFlag("base_path", flags.Lookup("base-path"))
	_ = v.BindEnv("base_path", "SHOWCASE_BASE_PATH")
}

func adminPathFlag(v *viper.Viper) string {
	return v.GetString("admin.path")
}

func addAdminPathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("admin-path", "/admin", "Base path of the admin api")
	_ = v.BindPFlag("admin.path", flags.Lookup("admin-path"))
	_ = v.BindEnv("admin.path", "SHOWCASE_ADMIN_PATH")
}

func adminTokenFlag(v *viper.Viper) string {
	return v.GetString("admin.token")
}

func addAdminTokenFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("admin-token", "", "Bearer token of the admin api, admin routes are disabled if empty")
	_ = v.BindPFlag("admin.token", flags.Lookup("admin-token"))
	_ = v.BindEnv("admin.token", "SHOWCASE_ADMIN_TOKEN")
}

func corsOriginsFlag(v *viper.Viper) []string {
	return v.GetStringSlice("cors.origins")
}

func addCORSOriginsFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringSlice("cors-origins", []string{"*"}, "Origins allowed to call the api")
	_ = v.BindPFlag("cors.origins", flags.Lookup("cors-origins"))
	_ = v.BindEnv("cors.origins", "SHOWCASE_CORS_ORIGINS")
}

func featuredLimitFlag(v *viper.Viper) int {
	return v.GetInt("featured.limit")
}

func addFeaturedLimitFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("featured-limit", 6, "Default number of featured portfolio items")
	_ = v.BindPFlag("featured.limit", flags.Lookup("featured-limit"))
	_ = v.BindEnv("featured.limit", "SHOWCASE_FEATURED_LIMIT")
}

func storeTypeFlag(v *viper.Viper) string {
	return v.GetString("store.type")
}

func addStoreTypeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("store-type", "rest", "Data store: rest, postgres or document")
	_ = v.BindPFlag("store.type", flags.Lookup("store-type"))
	_ = v.BindEnv("store.type", "SHOWCASE_STORE_TYPE")
}

func storeURLFlag(v *viper.Viper) string {
	return v.GetString("store.url")
}

func addStoreURLFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("store-url", "", "Base URL of the hosted data store (store-type rest)")
	_ = v.BindPFlag("store.url", flags.Lookup("store-url"))
	_ = v.BindEnv("store.url", "SHOWCASE_STORE_URL")
}

func storeAPIKeyFlag(v *viper.Viper) string {
	return v.GetString("store.api_key")
}

func addStoreAPIKeyFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("store-api-key", "", "API key of the hosted data store (store-type rest)")
	_ = v.BindPFlag("store.api_key", flags.Lookup("store-api-key"))
	_ = v.BindEnv("store.api_key", "SHOWCASE_STORE_API_KEY")
}

func storeTimeoutFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("store.timeout")
}

func addStoreTimeoutFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("store-timeout", 10*time.Second, "Timeout of requests to the hosted data store")
	_ = v.BindPFlag("store.timeout", flags.Lookup("store-timeout"))
	_ = v.BindEnv("store.timeout", "SHOWCASE_STORE_TIMEOUT")
}

func storeDSNFlag(v *viper.Viper) string {
	return v.GetString("store.dsn")
}

func addStoreDSNFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("store-dsn", "", "PostgreSQL connection string (store-type postgres)")
	_ = v.BindPFlag("store.dsn", flags.Lookup("store-dsn"))
	_ = v.BindEnv("store.dsn", "SHOWCASE_STORE_DSN")
}

func storeMaxConnsFlag(v *viper.Viper) int32 {
	return v.GetInt32("store.max_conns")
}

func addStoreMaxConnsFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int32("store-max-conns", 5, "Maximum number of PostgreSQL connections")
	_ = v.BindPFlag("store.max_conns", flags.Lookup("store-max-conns"))
	_ = v.BindEnv("store.max_conns", "SHOWCASE_STORE_MAX_CONNS")
}

func storageTypeFlag(v *viper.Viper) string {
	return v.GetString("storage.type")
}

func addStorageTypeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-type", "filesystem", "Storage of the document store: filesystem or blob")
	_ = v.BindPFlag("storage.type", flags.Lookup("storage-type"))
	_ = v.BindEnv("storage.type", "SHOWCASE_STORAGE_TYPE")
}

func storageDirFlag(v *viper.Viper) string {
	return v.GetString("storage.dir")
}

func addStorageDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-dir", "/var/lib/showcase", "Where to put my data")
	_ = v.BindPFlag("storage.dir", flags.Lookup("storage-dir"))
	_ = v.BindEnv("storage.dir", "SHOWCASE_STORAGE_DIR")
}

func storageBlobBucketFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.bucket")
}

func addStorageBlobBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-bucket", "", "Bucket URL, e.g. gs://bucket, s3://bucket?region=eu-central-1 or azblob://container")
	_ = v.BindPFlag("storage.blob.bucket", flags.Lookup("storage-blob-bucket"))
	_ = v.BindEnv("storage.blob.bucket", "SHOWCASE_STORAGE_BLOB_BUCKET")
}

func storageBlobPrefixFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.prefix")
}

func addStorageBlobPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-prefix", "", "Key prefix inside the bucket")
	_ = v.BindPFlag("storage.blob.prefix", flags.Lookup("storage-blob-prefix"))
	_ = v.BindEnv("storage.blob.prefix", "SHOWCASE_STORAGE_BLOB_PREFIX")
}

func historyLimitFlag(v *viper.Viper) int {
	return v.GetInt("history.limit")
}

func addHistoryLimitFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("history-limit", 2, "Number of backups to keep per collection")
	_ = v.BindPFlag("history.limit", flags.Lookup("history-limit"))
	_ = v.BindEnv("history.limit", "SHOWCASE_HISTORY_LIMIT")
}

func gracefulPeriodFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("graceful_period")
}

func addGracefulPeriodFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("graceful-period", 0, "Duration to wait for in-flight requests on shutdown")
	_ = v.BindPFlag("graceful_period", flags.Lookup("graceful-period"))
	_ = v.BindEnv("graceful_period", "SHOWCASE_GRACEFUL_PERIOD")
}

func gzipLevelFlag(v *viper.Viper) int {
	return v.GetInt("gzip.level")
}

func addGzipLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("gzip-level", -1, "Gzip compression level of replies, -1 uses the default")
	_ = v.BindPFlag("gzip.level", flags.Lookup("gzip-level"))
	_ = v.BindEnv("gzip.level", "SHOWCASE_GZIP_LEVEL")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}

func servicePProfEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.pprof.enabled")
}

func addServicePProfEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-pprof-enabled", false, "Enable pprof service")
	_ = v.BindPFlag("service.pprof.enabled", flags.Lookup("service-pprof-enabled"))
}

func otelEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("otel.enabled")
}

func addOtelEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("otel-enabled", false, "Enable otel service")
	_ = v.BindPFlag("otel.enabled", flags.Lookup("otel-enabled"))
	_ = v.BindEnv("otel.enabled", "OTEL_ENABLED")
}

func endpointFlag(v *viper.Viper) string {
	return v.GetString("endpoint")
}

func addEndpointFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("endpoint", "http://127.0.0.1:8080/api", "Public api endpoint to probe")
	_ = v.BindPFlag("endpoint", flags.Lookup("endpoint"))
	_ = v.BindEnv("endpoint", "SHOWCASE_ENDPOINT")
}

func probeNumFlag(v *viper.Viper) int {
	return v.GetInt("probe.num")
}

func addProbeNumFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("num", 1, "Number of probe rounds")
	_ = v.BindPFlag("probe.num", flags.Lookup("num"))
}

func probeDelayFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("probe.delay")
}

func addProbeDelayFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("delay", 2*time.Second, "Delay between probe rounds")
	_ = v.BindPFlag("probe.delay", flags.Lookup("delay"))
}
