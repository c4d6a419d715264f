/*
Package signal provides the small reactive primitives the loop runs on:
a multi-producer Mailbox that coalesces coincident sends into one batch
per tick, and a Signal holding a continuously updated value that any
number of watchers can observe.
*/
package signal
