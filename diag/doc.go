// Package diag delivers validation reports.
//
// A Sink receives one Report per violation and may ask for the offending
// call to be failed by returning true, the same contract a debug-report
// callback has. Sinks compose:
//
//	sink := diag.Multi(
//		diag.NewFilter(diag.NewLogSink(logger), errors.SeverityError|errors.SeverityWarning, nil),
//		callbacks,
//		history,
//	)
//
// LogSink writes reports through zap, Callbacks dispatches to registered
// debug-report callbacks, History keeps the most recent reports in a bounded
// queue and Recorder captures everything for tests.
package diag
