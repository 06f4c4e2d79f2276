// Package daemon coordinates the long-running klogd process lifecycle.
//
// It owns exactly one instance lock: Start acquires it (failing fast when
// another instance holds it) and Stop releases it. The log pipeline
// itself is an external collaborator; keep orchestration here and
// primitives in their own packages.
package daemon
