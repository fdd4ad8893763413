// Package log provides simple leveled logging for ip2networkd.
//
// Messages carry a level prefix ([DBG], [INF], [WRN], [ERR]), optionally colored.
// Errors always go to stderr; other levels go to stdout unless SetForceStdErr is on.
// Debug messages are printed only in verbose mode.
//
//	log.SetVerbose(true)
//	log.Debugf("Interface %s kept with %d static addresses", name, n)
//	log.Fatalf("Failed to write units: %v", err) // exits with code 1
package log
