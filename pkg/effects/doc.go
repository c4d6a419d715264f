/*
Package effects describes pending side-effect work as plain values.

An Effect is a deferred unit of work that, when executed, yields zero or
more actions. A Batch is an ordered collection of effects accumulated
across one fold step. Batches form a monoid: None is the identity and
Append is associative and order-preserving, so combining the effects of
several actions in one step is equivalent to combining them across steps.

Nothing in this package runs an effect. A Batch is turned into a single
runnable ports.Task with Task, and execution is delegated entirely to an
Executor chosen by the host.
*/
package effects
