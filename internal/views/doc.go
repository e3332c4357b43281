// Package views provides the demo views panectl places into layouts and the
// registry that maps dump references back to them.
//
// Every view kind implements layout.View. Dumps only record a view's
// reference, so restoring a layout asks the Registry for a fresh view per
// reference; views of the same reference share their content source (the
// log buffer, the clock).
package views
