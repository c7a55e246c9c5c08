// Package courier provides the Courier aggregate for the delivery system.
//
// A courier is an external worker who picks up packages at merchant stores and
// delivers them to shoppers. The aggregate tracks whether the courier is
// currently active, which delivery service families they handle, and their
// last reported ETA, which the dispatcher uses as a sortable proxy for current
// load when no route-affinity match exists.
package courier
