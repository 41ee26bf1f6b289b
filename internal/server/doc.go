// Package server exposes a workspace over HTTP.
//
// Routes are mounted on a chi router. Every board mutation goes through
// [workspace.Workspace], so concurrent requests against one board are
// serialized and a rejected change is never stored. Errors are returned as
// JSON {"code", "message"} with a status derived from the pkg/errors code.
package server
