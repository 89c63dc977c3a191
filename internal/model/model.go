// Package model holds the entities of the service and the request and
// response payloads built around them. Each entity lives in its own
// subpackage.
package model

// IDResponse is returned by endpoints that create a resource.
type IDResponse struct {
	ID int64 `json:"id"`
}
