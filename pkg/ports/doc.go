/*
Package ports defines the interfaces between the parley core and its host.

These interfaces decouple the conversation engine from the concrete UI,
input system and storage, so the engine can be tested with fakes and
embedded in any host (game engine, terminal, test harness).

# Key Interfaces

  - Presenter / Slot: Receive the speaker, the line and the selectable options.
  - InputSource: Emits the "advance" event (confirm key, button press).
  - Host: Locks unrelated input while a conversation is shown.
  - DocumentSource: Retrieves raw pairs and tree documents (memory, files, Redis).
*/
package ports
