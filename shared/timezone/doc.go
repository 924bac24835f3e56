// Package timezone keeps the application timezone used to stamp and render tutorial timestamps.
//
// Usage:
//
//	timezone.Init(cfg.App.Timezone)        // once, at startup
//	now := timezone.Now()                  // current time in the app timezone
//	s := timezone.Format(t, time.RFC3339)  // render any time in the app timezone
//
// Only IANA names are accepted ("UTC", "Asia/Jakarta", "Europe/London"). Until Init runs, or when
// the configured name cannot be loaded, the package works in UTC.
package timezone
