package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	root   string
	watch  bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRoot overrides the repository root directory.
func WithRoot(root string) Option {
	return func(a *application) {
		a.root = root
	}
}

// WithWatch keeps the process running and rebuilds the index on changes.
func WithWatch() Option {
	return func(a *application) {
		a.watch = true
	}
}
