// Package config implements Hydrogen's hierarchical configuration loader:
// the JSON + environment + defaults aggregate (AppConfig), its per-domain
// section loaders, and the single owning load/replace lifecycle.
package config

import "time"

// AppConfig is the single owning aggregate holding one typed substructure
// per domain. Exactly one AppConfig exists process-wide at any time;
// replacing it (via Load) atomically transitions ownership.
type AppConfig struct {
	Server    ServerConfig
	Network   NetworkConfig
	Databases DatabasesConfig
	Logging   LoggingConfig
	WebServer WebServerConfig
	API       APIConfig
	Swagger   SwaggerConfig
	WebSocket WebSocketConfig
	Terminal  TerminalConfig
	MDNSServer MDNSServerConfig
	MDNSClient MDNSClientConfig
	MailRelay MailRelayConfig
	Print     PrintConfig
	Resources ResourcesConfig
	OIDC      OIDCConfig
	Notify    NotifyConfig
}

// ── A. Server ────────────────────────────────────────────────

type ServerConfig struct {
	ServerName   string
	LogFile      string
	PayloadKey   string // sensitive
	StartupDelay time.Duration
}

// ── B. Network ───────────────────────────────────────────────

type InterfaceLimits struct {
	MaxInterfaces          int64
	MaxIPsPerInterface     int64
	MaxInterfaceNameLength int64
	MaxIPAddressLength     int64
}

type PortAllocation struct {
	StartPort     int64
	EndPort       int64
	ReservedPorts []int64
}

type AvailableInterface struct {
	Name      string
	Available bool
}

type NetworkConfig struct {
	Interfaces    InterfaceLimits
	PortAlloc     PortAllocation
	Available     []AvailableInterface // sorted by name
}

// ── C. Databases ─────────────────────────────────────────────

type QueueScalingProfile struct {
	Workers int64
}

type DefaultQueues struct {
	Slow   QueueScalingProfile
	Medium QueueScalingProfile
	Fast   QueueScalingProfile
	Cache  QueueScalingProfile
}

type DatabaseConnection struct {
	Name                      string
	Enabled                   bool
	Type                      string // Engine
	Database                  string
	Host                      string
	Port                      int64
	User                      string
	Pass                      string // sensitive
	Workers                   int64
	PreparedStatementCacheSize int64
}

type DatabasesConfig struct {
	DefaultWorkers  int64
	ConnectionCount int64
	Connections     []DatabaseConnection // at most 5
	DefaultQueues   DefaultQueues
}

// ── D. Logging ───────────────────────────────────────────────

type LogTarget struct {
	Enabled      bool
	DefaultLevel string
	Subsystems   map[string]string
}

type LoggingConfig struct {
	Console LogTarget
	File    LogTarget
	Database LogTarget
	Notify  LogTarget
}

// ── E. WebServer ─────────────────────────────────────────────

type WebServerConfig struct {
	EnableIPv4          bool
	EnableIPv6          bool
	Port                int64
	WebRoot             string
	UploadPath          string
	UploadDir           string
	MaxUploadSize       uint64
	ThreadPoolSize      int64
	MaxConnections      int64
	MaxConnectionsPerIP int64
	ConnectionTimeout   time.Duration
	CORSOrigin          string
}

// ── F. API ───────────────────────────────────────────────────

type APIConfig struct {
	Enabled    bool
	Prefix     string
	JWTSecret  string // sensitive
	CORSOrigin string
}

// ── G. Swagger ───────────────────────────────────────────────

type SwaggerContact struct {
	Name  string
	Email string
	URL   string
}

type SwaggerLicense struct {
	Name string
	URL  string
}

type SwaggerMetadata struct {
	Title       string
	Description string
	Version     string
	Contact     SwaggerContact
	License     SwaggerLicense
}

type SwaggerUIOptions struct {
	TryItEnabled          bool
	AlwaysExpanded        bool
	DisplayOperationId    bool
	DefaultModelExpandDepth int64
	ShowExtensions        bool
	ShowCommonExtensions  bool
	DocExpansion          string
	SyntaxHighlightTheme  string
}

type SwaggerConfig struct {
	Enabled    bool
	Prefix     string
	WebRoot    string
	CORSOrigin string
	IndexPage  string
	Metadata   SwaggerMetadata
	UIOptions  SwaggerUIOptions
}

// ── H. WebSocket ─────────────────────────────────────────────

type ConnectionTimeouts struct {
	ShutdownWaitSeconds  int64
	ServiceLoopDelayMs   int64
	ConnectionCleanupMs  int64
	ExitWaitSeconds      int64
}

type WebSocketConfig struct {
	EnableIPv4       bool
	EnableIPv6       bool
	LibLogLevel      string
	Port             int64
	Protocol         string
	Key              string // sensitive
	MaxMessageSize   uint64
	ConnectionTimeouts ConnectionTimeouts
}

// ── I. Terminal ──────────────────────────────────────────────

type TerminalConfig struct {
	Enabled           bool
	WebPath           string
	ShellCommand      string
	MaxSessions       int64
	IdleTimeoutSeconds int64
	BufferSize        uint64
	WebRoot           string
	CORSOrigin        string
	IndexPage         string
}

// ── J. mDNS Server ───────────────────────────────────────────

type MDNSService struct {
	Name       string
	Type       string
	Port       int64
	TxtRecords []string
}

type MDNSServerConfig struct {
	EnableIPv4   bool
	EnableIPv6   bool
	DeviceId     string
	FriendlyName string
	Model        string
	Manufacturer string
	Version      string
	RetryCount   int64
	Services     []MDNSService
}

// ── K. mDNS Client ───────────────────────────────────────────

type MDNSClientConfig struct {
	EnableIPv4          bool
	EnableIPv6          bool
	ScanInterval        time.Duration
	MaxServices         int64
	RetryCount          int64
	HealthCheckEnabled  bool
	HealthCheckInterval time.Duration
	ServiceTypes        []string
}

// ── L. Mail Relay ────────────────────────────────────────────

type MailQueue struct {
	MaxQueueSize       int64
	RetryAttempts      int64
	RetryDelaySeconds  int64
}

type MailServer struct {
	Host     string
	Port     int64
	Username string
	Password string // sensitive
	UseTLS   bool
}

type MailRelayConfig struct {
	Enabled    bool
	ListenPort int64
	Workers    int64
	Queue      MailQueue
	Servers    []MailServer
}

// ── M. Print ─────────────────────────────────────────────────

type PrintPriorities struct {
	Default     int64
	Emergency   int64
	Maintenance int64
	System      int64
}

type PrintTimeouts struct {
	ShutdownWaitMs        int64
	JobProcessingTimeoutMs int64
}

type PrintBuffers struct {
	JobMessageSize    uint64
	StatusMessageSize uint64
}

type PrintMotion struct {
	MaxSpeed      float64
	MaxSpeedXY    float64
	MaxSpeedZ     float64
	MaxSpeedTravel float64
	Acceleration  float64
	ZAcceleration float64
	EAcceleration float64
	Jerk          float64
	SmoothMoves   bool
}

type PrintConfig struct {
	Enabled           bool
	MaxQueuedJobs     int64
	MaxConcurrentJobs int64
	Priorities        PrintPriorities
	Timeouts          PrintTimeouts
	Buffers           PrintBuffers
	Motion            PrintMotion
}

// ── N. Resources ─────────────────────────────────────────────

type ResourcesConfig struct {
	MaxMemoryMB             int64
	MaxBufferSize           uint64
	MinBufferSize           uint64
	MaxQueueSize            int64
	MaxQueueMemoryMB        int64
	MaxQueueBlocks          int64
	QueueTimeoutMs          int64
	PostProcessorBufferSize uint64
	MinThreads              int64
	MaxThreads              int64
	ThreadStackSize         uint64
	MaxOpenFiles            int64
	MaxFileSizeMB           int64
	MaxLogSizeMB            int64
	EnforceLimits           bool
	LogUsage                bool
	CheckIntervalMs         int64
}

// ── O. OIDC ──────────────────────────────────────────────────

type OIDCEndpoints struct {
	Authorization string
	Token         string
	UserInfo      string
	JWKS          string
	EndSession    string
	Introspection string
	Revocation    string
	Registration  string
}

type OIDCKeys struct {
	SigningKey             string // sensitive
	EncryptionKey          string // sensitive
	JWKSUri                string
	StoragePath            string
	EncryptionEnabled      bool
	RotationIntervalDays   int64
}

type OIDCTokens struct {
	AccessTokenLifetime  time.Duration
	RefreshTokenLifetime time.Duration
	IdTokenLifetime      time.Duration
	SigningAlg           string
	EncryptionAlg        string
}

type OIDCConfig struct {
	Enabled      bool
	Issuer       string
	ClientId     string
	ClientSecret string // sensitive
	RedirectUri  string
	Port         int64
	AuthMethod   string
	Scope        string
	VerifySSL    bool
	Endpoints    OIDCEndpoints
	Keys         OIDCKeys
	Tokens       OIDCTokens
}

// ── P. Notify ────────────────────────────────────────────────

type NotifySMTP struct {
	Host        string
	Port        int64
	Username    string
	Password    string // sensitive
	UseTLS      bool
	Timeout     time.Duration
	MaxRetries  int64
	FromAddress string
}

type NotifyConfig struct {
	Enabled  bool
	Notifier string
	SMTP     NotifySMTP
}
