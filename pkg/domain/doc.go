/*
Package domain contains the core domain model for the adoctree include graph.

It defines the Node entity: one entry per file reference discovered while
scanning a documentation tree, carrying the annotation flags the resolver
assigns and the snapshot of conditional nesting at the point of discovery.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Node: one reference in the include graph (the root document or an
    include::target[] occurrence), with flags, children, and conditions.
*/
package domain
