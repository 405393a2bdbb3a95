// Package pkg provides the libraries behind elbow, an orthogonal connector
// router.
//
// # Overview
//
// Given two anchors, each a point with an optional facing direction, elbow
// computes an axis-aligned polyline from one to the other that leaves and
// arrives along the requested axes, keeps a clearance from faced anchors, and
// carries no redundant vertices. The pkg directory is organized into:
//
//  1. [elbow] - The router (order normalization, symmetry, bends, cleaning)
//  2. [io] - JSON batch documents and results
//  3. [batch] - Concurrent routing of batch documents
//  4. [errors] - Coded errors and input validators
//  5. [observability] - Hooks for batch and HTTP events
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The data flow for a batch:
//
//	JSON document (file, stdin, or POST /v1/routes)
//	         ↓
//	    [io] package (decode, normalize overshoot alias)
//	         ↓
//	    [batch] package (bounded worker pool, defaults merged per connector)
//	         ↓
//	    [elbow] package (Route per connector)
//	         ↓
//	    JSON results document
//
// # Quick Start
//
//	import "github.com/matzehuels/elbow/pkg/elbow"
//
//	path, err := elbow.Route(
//	    elbow.NewAnchor(100, 100, elbow.XPos),
//	    elbow.NewAnchor(300, 200, elbow.YPos),
//	    elbow.WithClearance(50),
//	)
//	// path: (100, 100) (200, 100) (200, 250) (300, 250) (300, 200)
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -short ./pkg/...   # Skip the exhaustive property sweep
//	go test -run Example ./pkg/elbow
//
// [elbow]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/elbow
// [io]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/io
// [batch]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/batch
// [errors]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/elbow/pkg/buildinfo
package pkg
