/*
Package runtime implements the core fold loop.

A Loop owns a single immutable model and a mailbox of incoming actions.
Each tick it drains the mailbox into one ordered batch, folds the batch
through the update function while accumulating effect descriptions,
publishes the new model and re-rendered output, and derives one runnable
task from the accumulated effects. Everything else (running tasks,
feeding inputs, rendering output) belongs to the host.
*/
package runtime
