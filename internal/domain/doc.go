// Package domain contains the core model for customs cargo tracking.
//
// The domain does not depend on net/http, JSON decoding or the filesystem.
// Adapters map UNIPASS responses and YAML config into these types.
package domain
