package config

// Exposed for tests
func NewTestLogger(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

func NewTestRepository(backend string) *Repository {
	return &Repository{backend: backend}
}
