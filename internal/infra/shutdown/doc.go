// Package shutdown runs registered cleanup hooks when hhbook-server is
// asked to stop, either by SIGINT/SIGTERM or by its context ending.
//
// Usage:
//
//	h := shutdown.NewHandler(10*time.Second, logger)
//	h.OnShutdown("http", srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
