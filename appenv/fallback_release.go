//go:build release

package appenv

// Fallback is the environment reported when APP_ENV is not set.
const Fallback = Production
