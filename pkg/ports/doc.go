/*
Package ports defines the contracts between the weft loop and its collaborators.

These interfaces decouple the core fold loop from the environment that feeds
it actions and executes its effects, following Hexagonal Architecture
principles. The loop only ever sees a Sender to emit through, Sources to
merge in, and an Executor to hand derived work to.

# Key Interfaces

  - Sender: The typed address through which actions enter the loop
    (the view, external sources, and effect completions all write here).
  - Source: A named external stream of actions merged into the loop's mailbox.
  - Executor: Runs the Tasks derived from accumulated effect batches.
*/
package ports
