// Package appenv resolves the application environment a process runs in.
// The value comes from the APP_ENV variable when it is set and non-empty,
// otherwise from a fallback fixed at build time: "development" for regular
// builds and "production" for builds tagged with "release".
package appenv
