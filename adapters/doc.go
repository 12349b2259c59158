// File: adapters/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package adapters narrows the deque container to single-ended views.
//
// Queue exposes FIFO order and Stack exposes LIFO order, both backed by a
// ring-buffer deque and both satisfying the corresponding api contract.
// Reads use the comma-ok form, so adapter call sites never need recover
// scaffolding around empty containers.
package adapters
