// Package groupmgr defines the external collaborator contract the
// router dispatches to — a sharded group-manager service, one instance
// per execution core — plus the eleven routed request/response type
// pairs, the two-stage offset-commit pair, the two fan-out operations
// (list_groups, delete_groups), and an in-memory test/demo double.
//
// Everything in this package that looks like "group state" is a stand-in
// for the real thing: join/sync/heartbeat protocol handling, rebalance
// generations, member expiry, and durable offset storage are owned by a
// production implementation this package never provides. InMemory
// exists only to let internal/router's tests and cmd/routerd's demo
// exercise the router itself.
package groupmgr
