/*
Package adoctree resolves the include graph of an AsciiDoc document tree and
renders it as an annotated tree.

Given a root document that pulls content in through include::path[]
directives, the engine recursively follows every include and classifies each
reference along the way: targets inside comment blocks or behind line
comments, targets that point back at their own parent, targets with illegal
path characters, and targets that do not exist on disk. Conditional
directives (ifdef/ifndef/ifeval) are tracked for annotation, not evaluated.

# Concept

adoctree treats your documentation as a graph of files. The resolver walks
it depth-first, building one node per reference, and the presentation layer
prints the result with inline status tags. This Hexagonal Architecture keeps
the resolver core decoupled from the serving surfaces: CLI, HTTP server, or
MCP agent infrastructure.

# Key Entities

  - Node: one reference in the include graph, with status flags and the
    conditional directives that enclosed it at the point of discovery.
  - Engine: the library facade; resolves one root document per instance.
  - Service: the ports.TreeEngine adapter consumed by HTTP and MCP servers.

# Usage

	package main

	import (
		"log"
		"os"

		"github.com/rolfedh/adoctree"
	)

	func main() {
		engine, err := adoctree.New("docs/master.adoc")
		if err != nil {
			log.Fatal(err)
		}

		// Print the annotated include tree to stdout.
		engine.Render(os.Stdout)
	}

Status tags in the rendered tree: "//" commented, "R!" self-recursive,
"X!" invalid path, "N!" missing. A line starting with "??" beneath a node
lists the conditional directives that enclose it.
*/
package adoctree
