/*
Package domain contains the core models of the parley conversation engine.

It defines the conversation graph (Nodes and Trees), the format-neutral
Document read from pairs and tree files, the error taxonomy and the
lifecycle events emitted while a conversation is traversed. This package is
kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Node: One conversation step, either a Line (speaker + text + optional
    successor) or a Choice (speaker + text + labelled options).
  - Tree: A fully linked graph built from one tree document, owning its
    nodes and designating a single root.
  - Document: The decoded form of a pairs or tree file (XML or YAML).
  - LifecycleHooks: Callbacks for observing sessions and node transitions.
*/
package domain
