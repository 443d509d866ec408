/*
Package server implements msgpack IPC over stdin/stdout for a word dictionary.

Clients write a stream of msgpack maps and read one msgpack map back per
request. Requests are handled strictly in order on a single goroutine, so the
dictionary needs no locking.

# IPC

On start the server writes a ready frame:

	{"status": "ready"}

Every request carries an id, an op and usually a word or prefix:

	{"id": "r1", "op": "insert", "w": "cart"}
	{"id": "r2", "op": "count", "w": "ca"}
	{"id": "r3", "op": "search", "w": "ca", "l": 2}

Mutations and queries answer with a Response:

	{"id": "r2", "status": "ok", "c": 3}

Searches answer with a SearchResponse, timing in microseconds:

	{"id": "r3", "s": ["car", "cart"], "c": 2, "t": 4}

Failures answer with an ErrorResponse and do not stop the loop, except for
frames that cannot be decoded at all:

	{"id": "r4", "e": "unknown op: frobnicate", "c": 400}

# Ops

	insert    add "w"; "c" is the new total
	remove    delete "w"; "c" is the new total
	count     words under prefix "w", or all words for "*"
	contains  "b" is true if "w" is a path in the dictionary
	search    up to "l" words under prefix "w"
	health    liveness probe
*/
package server

// Op names accepted in Request.Op.
const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpCount    = "count"
	OpContains = "contains"
	OpSearch   = "search"
	OpHealth   = "health"
)

// Request is a single client message
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Response answers insert, remove, count, contains and health
type Response struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Count  int    `msgpack:"c,omitempty"`
	Found  bool   `msgpack:"b,omitempty"`
}

// SearchResponse answers search
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// StatusFrame is written once when the server is ready
type StatusFrame struct {
	Status string `msgpack:"status"`
}
