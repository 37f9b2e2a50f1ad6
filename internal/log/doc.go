// Package log provides logging with automatic redaction of personal data,
// built on top of the standard slog package.
//
// Applications carry the applicant's phone number, email, and address.
// The SecureHandler masks those fields, along with credentials such as
// tokens and passwords, before a record reaches the underlying handler, so
// verbose logs can be shared without leaking applicant data.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("application loaded",
//	    "id", app.ID,
//	    "phone", app.Phone, // logged as ***REDACTED***
//	)
//	slog.SetDefault(logger)
package log
