package config

import "time"

// initializeDefaults populates every substructure of cfg with the baseline
// defaults below, before any section loader runs. Every field is set here
// so an all-defaults AppConfig (no file, no env) is always complete.
func initializeDefaults(cfg *AppConfig) {
	cfg.Server = ServerConfig{
		ServerName:   "hydrogen",
		LogFile:      "/var/log/hydrogen/hydrogen.log",
		PayloadKey:   "Trust4All",
		StartupDelay: 5 * time.Millisecond,
	}

	cfg.Network = NetworkConfig{
		Interfaces: InterfaceLimits{
			MaxInterfaces:          16,
			MaxIPsPerInterface:     8,
			MaxInterfaceNameLength: 16,
			MaxIPAddressLength:     46,
		},
		PortAlloc: PortAllocation{
			StartPort: 1024,
			EndPort:   65535,
		},
		Available: []AvailableInterface{{Name: "all", Available: true}},
	}

	cfg.Databases = DatabasesConfig{
		DefaultWorkers:  1,
		ConnectionCount: 0,
		DefaultQueues: DefaultQueues{
			Slow:   QueueScalingProfile{Workers: 1},
			Medium: QueueScalingProfile{Workers: 2},
			Fast:   QueueScalingProfile{Workers: 4},
			Cache:  QueueScalingProfile{Workers: 2},
		},
	}

	defaultTarget := LogTarget{Enabled: true, DefaultLevel: "INFO", Subsystems: map[string]string{}}
	cfg.Logging = LoggingConfig{
		Console:  defaultTarget,
		File:     LogTarget{Enabled: true, DefaultLevel: "INFO", Subsystems: map[string]string{}},
		Database: LogTarget{Enabled: false, DefaultLevel: "WARN", Subsystems: map[string]string{}},
		Notify:   LogTarget{Enabled: false, DefaultLevel: "ERROR", Subsystems: map[string]string{}},
	}

	cfg.WebServer = WebServerConfig{
		EnableIPv4:          true,
		EnableIPv6:          false,
		Port:                5000,
		WebRoot:             "/var/www/hydrogen",
		UploadPath:          "/upload",
		UploadDir:           "/var/lib/hydrogen/uploads",
		MaxUploadSize:       100 * 1024 * 1024,
		ThreadPoolSize:      4,
		MaxConnections:      100,
		MaxConnectionsPerIP: 10,
		ConnectionTimeout:   30 * time.Second,
		CORSOrigin:          "*",
	}

	cfg.API = APIConfig{
		Enabled:    true,
		Prefix:     "/api",
		JWTSecret:  "hydrogen-default-jwt-secret",
		CORSOrigin: "*",
	}

	cfg.Swagger = SwaggerConfig{
		Enabled:    true,
		Prefix:     "/swagger",
		WebRoot:    "/var/www/hydrogen/swagger",
		CORSOrigin: "*",
		IndexPage:  "index.html",
		Metadata: SwaggerMetadata{
			Title:       "Hydrogen API",
			Description: "Hydrogen application server API",
			Version:     "1.0.0",
			Contact:     SwaggerContact{Name: "Hydrogen", Email: "", URL: ""},
			License:     SwaggerLicense{Name: "", URL: ""},
		},
		UIOptions: SwaggerUIOptions{
			TryItEnabled:            true,
			AlwaysExpanded:          false,
			DisplayOperationId:      false,
			DefaultModelExpandDepth: 1,
			ShowExtensions:          false,
			ShowCommonExtensions:    false,
			DocExpansion:            "list",
			SyntaxHighlightTheme:    "agate",
		},
	}

	cfg.WebSocket = WebSocketConfig{
		EnableIPv4:     true,
		EnableIPv6:     false,
		LibLogLevel:    "WARN",
		Port:           5001,
		Protocol:       "hydrogen-protocol",
		Key:            "hydrogen-default-ws-key",
		MaxMessageSize: 10 * 1024 * 1024,
		ConnectionTimeouts: ConnectionTimeouts{
			ShutdownWaitSeconds: 5,
			ServiceLoopDelayMs:  50,
			ConnectionCleanupMs: 500,
			ExitWaitSeconds:     10,
		},
	}

	cfg.Terminal = TerminalConfig{
		Enabled:            true,
		WebPath:            "/terminal",
		ShellCommand:       "/bin/sh",
		MaxSessions:        4,
		IdleTimeoutSeconds: 600,
		BufferSize:         4096,
		WebRoot:            "/var/www/hydrogen/terminal",
		CORSOrigin:         "*",
		IndexPage:          "index.html",
	}

	cfg.MDNSServer = MDNSServerConfig{
		EnableIPv4:   true,
		EnableIPv6:   false,
		DeviceId:     "hydrogen-device",
		FriendlyName: "Hydrogen",
		Model:        "Hydrogen Server",
		Manufacturer: "Hydrogen Project",
		Version:      "1.0.0",
		RetryCount:   3,
	}

	cfg.MDNSClient = MDNSClientConfig{
		EnableIPv4:          true,
		EnableIPv6:          false,
		ScanInterval:        30 * time.Second,
		MaxServices:         64,
		RetryCount:          3,
		HealthCheckEnabled:  true,
		HealthCheckInterval: 60 * time.Second,
	}

	cfg.MailRelay = MailRelayConfig{
		Enabled:    false,
		ListenPort: 25,
		Workers:    2,
		Queue: MailQueue{
			MaxQueueSize:      1000,
			RetryAttempts:     3,
			RetryDelaySeconds: 60,
		},
	}

	cfg.Print = PrintConfig{
		Enabled:           false,
		MaxQueuedJobs:     100,
		MaxConcurrentJobs: 1,
		Priorities: PrintPriorities{
			Default:     5,
			Emergency:   1,
			Maintenance: 3,
			System:      2,
		},
		Timeouts: PrintTimeouts{
			ShutdownWaitMs:         5000,
			JobProcessingTimeoutMs: 3600000,
		},
		Buffers: PrintBuffers{
			JobMessageSize:    4096,
			StatusMessageSize: 1024,
		},
		Motion: PrintMotion{
			MaxSpeed:       100,
			MaxSpeedXY:     100,
			MaxSpeedZ:      10,
			MaxSpeedTravel: 150,
			Acceleration:   500,
			ZAcceleration:  50,
			EAcceleration:  1000,
			Jerk:           10,
			SmoothMoves:    true,
		},
	}

	cfg.Resources = ResourcesConfig{
		MaxMemoryMB:             512,
		MaxBufferSize:           65536,
		MinBufferSize:           1024,
		MaxQueueSize:            1000,
		MaxQueueMemoryMB:        64,
		MaxQueueBlocks:          256,
		QueueTimeoutMs:          5000,
		PostProcessorBufferSize: 8192,
		MinThreads:              2,
		MaxThreads:              16,
		ThreadStackSize:         1024 * 1024,
		MaxOpenFiles:            1024,
		MaxFileSizeMB:           100,
		MaxLogSizeMB:            50,
		EnforceLimits:           true,
		LogUsage:                false,
		CheckIntervalMs:         5000,
	}

	cfg.OIDC = OIDCConfig{
		Enabled:    false,
		Issuer:     "",
		ClientId:   "",
		AuthMethod: "client_secret_basic",
		Scope:      "openid profile email",
		VerifySSL:  true,
		Port:       9000,
		Keys: OIDCKeys{
			StoragePath:          "/var/lib/hydrogen/oidc",
			EncryptionEnabled:    false,
			RotationIntervalDays: 90,
		},
		Tokens: OIDCTokens{
			AccessTokenLifetime:  1 * time.Hour,
			RefreshTokenLifetime: 30 * 24 * time.Hour,
			IdTokenLifetime:      1 * time.Hour,
			SigningAlg:           "RS256",
			EncryptionAlg:        "",
		},
	}

	cfg.Notify = NotifyConfig{
		Enabled:  false,
		Notifier: "smtp",
		SMTP: NotifySMTP{
			Port:       587,
			UseTLS:     true,
			Timeout:    10 * time.Second,
			MaxRetries: 3,
		},
	}
}
