package logging

import (
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.Mutex
	logConfig *Config
)

// Configure sets the logging configuration.
// It must be called before the first GetLogger call to take effect.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// GetLogger returns the singleton logger instance.
// Without prior Configure the logger writes to stdout only.
func GetLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		cfg := logConfig
		if cfg == nil {
			cfg = &Config{}
		}

		var err error
		instance, err = NewLogger(cfg)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	return instance
}
