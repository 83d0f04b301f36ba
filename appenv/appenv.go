package appenv

import "os"

// Variable is the environment variable consulted by Current.
const Variable = "APP_ENV"

const (
	// Development is the environment name used for local work.
	Development = "development"
	// Production is the environment name used for deployed builds.
	Production = "production"
)

// Current returns the application environment. A non-empty APP_ENV is
// returned verbatim, so custom names such as "staging" pass through untouched.
// When APP_ENV is unset or empty the build-time Fallback is returned.
func Current() string {
	if value, ok := os.LookupEnv(Variable); ok && value != "" {
		return value
	}
	return Fallback
}

// IsDevelopment reports whether Current is exactly "development".
func IsDevelopment() bool {
	return Current() == Development
}

// IsProduction reports whether Current is exactly "production".
// Custom environments make both IsProduction and IsDevelopment false.
func IsProduction() bool {
	return Current() == Production
}
