// Package typelog is a minimal plain-text logger built around caller-chosen
// type labels.
//
// Key features
//   - Dynamic types: any label becomes a log entry point via Type without
//     pre-declaring it; the first use of a permitted label registers a fast
//     path in a dispatch table so later calls skip validation
//   - Optional closed label sets with a pluggable invalid-type handler
//   - One fixed line format: timestamp, uppercased label, message and the
//     caller's file, routine and line
//   - File, STDOUT and STDERR destinations with append or clobber semantics
//   - Raw-sink escape hatch for dumping pre-formatted text into the same file
//
// Typical usage
//
//	log, err := typelog.Open(typelog.Config{
//		File:  "app.log",
//		Types: []string{"info", "warn"},
//	})
//	if err != nil {
//		panic(err)
//	}
//	defer log.Close()
//
//	log.Log("info", "service started")
//	warn := log.Type("warn")
//	warn("disk nearly full")
package typelog
