// Package logging provides the application-wide zap logger. Output is silent
// unless GOOGLE_LOGIN_LOG_LEVEL is set, so tests and release builds stay quiet.
package logging
