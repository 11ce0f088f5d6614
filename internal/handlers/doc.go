// Package handlers declares the routes of the service.
//
// Each handler struct receives its dependencies through its constructor and
// registers its routes in Routes. Handlers return an internal.Outcome on
// success and an internal.Failure (InternalError) on any dependency error.
package handlers
