// Package groupid defines the opaque consumer/transactional group
// identifier carried on every routed request.
//
// A group identifier is nothing more than an equality- and
// hash-comparable name: the router never inspects its contents, never
// stores it, and never derives meaning from it beyond using it as the
// input to the coordinator mapper. Keeping it as its own tiny package
// (rather than a bare string scattered through the router) gives the
// rest of the module one vocabulary word for "the thing a request is
// routed by."
package groupid
