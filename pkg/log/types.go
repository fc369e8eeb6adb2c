package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "json" or "console"
	ColorEnabled bool

	// OutputPaths overrides stdout. The TUI points this at a file so log
	// lines never land on the screen it is drawing.
	OutputPaths []string
}

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey string

const traceIDKey ctxKey = "trace_id"
