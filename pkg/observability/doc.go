/*
Package observability composes and implements lifecycle hooks.

An App accepts exactly one LifecycleHooks value; Combine merges several
hook sets (metrics, logging, test probes) into one so independent
observers do not have to know about each other. LogHooks is a ready-made
observer that mirrors every event into a structured logger.
*/
package observability
