/*
Package ports defines the driven ports (interfaces) for the adoctree engine.

These interfaces decouple the resolver core from external implementations,
allowing the serving surfaces to work with interchangeable backends.

# Key Interfaces

  - TreeEngine: Resolves a root document path into its annotated include tree.
  - TreeCache: Caches resolved trees for the HTTP serving surface.
*/
package ports
