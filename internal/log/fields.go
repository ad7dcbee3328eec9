package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldGranularity = "granularity"
	FieldWalletID    = "wallet_id"
	FieldWalletName  = "wallet_name"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldTxCount     = "transaction_count"
	FieldSource      = "snapshot_source"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentCore      = "core"
	ComponentSnapshot  = "snapshot"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentAPI       = "api"
	ComponentCache     = "cache"
	ComponentRateLimit = "rate_limit"
)

// Operations defines standard operation names
const (
	OpFetch    = "fetch"
	OpRefresh  = "refresh"
	OpRender   = "render"
	OpExpand   = "expand"
	OpPersist  = "persist"
	OpConsume  = "consume"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
