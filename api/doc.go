// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the public contracts of hioload-deque.
//
// The package carries interfaces only and has no dependencies. Concrete
// containers live in the deque and adapters packages and assert compliance
// with these contracts at compile time.
package api
