/*
Package domain contains the observability value types shared by the loop
and its adapters.

The loop's model, action, and output types are application-defined and
generic, so this package only carries the concrete diagnostic surface:
lifecycle events and the hook set a host can register to observe the
loop without participating in it.
*/
package domain
