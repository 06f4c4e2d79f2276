package config

const (
	defaultComponent            = "klogd"
	defaultLockDir              = "/tmp/run"
	defaultLogDir               = "~/.local/share/klogd/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultShutdownGraceSeconds = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Daemon: Daemon{
			Component:            defaultComponent,
			LockDir:              defaultLockDir,
			ShutdownGraceSeconds: defaultShutdownGraceSeconds,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
