// Package io provides JSON import and export for connector batches.
//
// # Overview
//
// A batch document lists connectors to route, each a pair of anchors with
// optional per-connector settings. The results document holds one entry per
// connector, in input order, carrying either the routed points or a
// structured error.
//
// # Batch Format
//
//	{
//	  "defaults": {"clearance": 10, "bias": 0.5},
//	  "connectors": [
//	    {
//	      "id": "a-b",
//	      "from": {"x": 0, "y": 0, "facingDirection": "x+"},
//	      "to": {"x": 3, "y": 2},
//	      "clearance": 5
//	    }
//	  ]
//	}
//
// Connector fields:
//   - id: optional label, echoed in the result
//   - from, to: anchors; facingDirection is one of x+, x-, y+, y- and may be
//     omitted
//   - clearance: optional, overrides defaults.clearance
//   - bias: optional, overrides defaults.bias
//
// "overshoot" is accepted as an alias for "clearance" in both the defaults
// and connector objects. Giving both with different values is an error.
//
// # Results Format
//
//	{
//	  "routes": [
//	    {"id": "a-b", "points": [{"x": 0, "y": 0}, {"x": 5, "y": 0}, ...]},
//	    {"id": "c-d", "error": {"code": "INVALID_CLEARANCE", "message": "..."}}
//	  ]
//	}
//
// # Import
//
// Use [ImportJSON] to read a batch from a file path, or [ReadJSON] to read
// from any io.Reader. Unknown fields, malformed JSON and unknown facing
// directions are rejected with a structured error from pkg/errors.
//
// # Export
//
// Use [ExportJSON] to write any document to a file, or [WriteJSON] to write
// it to an io.Writer. Output is indented with two spaces.
package io
