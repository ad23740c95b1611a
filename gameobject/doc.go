// Package gameobject loads game-object documents into entity graphs.
//
// A game-object document is protobuf-text style: a flat list of top-level
// blocks, each tagged components or embedded_components. Every block
// becomes one child Node of the resulting Entity.
//
// # Node Kinds
//
//   - Reference nodes (components) point at an external component
//     document by path and may carry script property overrides. The
//     loader never opens the referenced file.
//   - Embedded nodes (embedded_components) carry a type name and a data
//     string whose contents are themselves a document in the same grammar.
//     The data is decoded against the schema registered for the type.
//
// # Example
//
//	components {
//	  id: "script"
//	  component: "/main/flag.script"
//	}
//	embedded_components {
//	  id: "sprite"
//	  type: "sprite"
//	  data: "default_animation: \"anim\"\n"
//	  "material: \"/builtins/materials/sprite.material\"\n"
//	  ""
//	  position {
//	    x: 10.0
//	  }
//	}
//
// # Transforms
//
// Each node may have position, rotation and scale sub-blocks. Missing
// blocks and missing axes take the identity value for that axis. Rotations
// are kept exactly as written; use Transform.Normalized for a unit
// quaternion.
//
// # Errors
//
// Loading is all-or-nothing. Any failure returns a *LoadError carrying an
// ErrorKind, the failing node id and the field path, and no Entity. Errors
// match the Err* sentinels with errors.Is.
//
// # Registry
//
// Component schemas are registered by type name before loading begins.
// NewBuiltinRegistry returns a registry holding the engine's builtin types;
// DefaultRegistry is shared and must not be modified once loads run
// concurrently.
package gameobject
