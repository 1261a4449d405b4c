// Package facegen orchestrates the face generation pipeline: it
// validates and defaults request parameters, then drives the
// fetch -> mask -> emit loop for the requested count, strictly
// sequentially. One fetch completes before masking begins, one image is
// emitted before the next fetch starts; iterations are independent but
// never run in parallel, which bounds load on the external source and
// keeps file naming deterministic.
//
// Every failure, from any stage, is classified into a small closed
// taxonomy (invalid_params, network_unreachable, upstream_failure,
// no_space, file_conflict, path_not_found, internal_error) carried by
// the Error type. Classification is driven by the typed errors each
// component returns, never by matching error message text. A failed
// call returns no artifacts; partial results are never surfaced.
package facegen
