// Package server runs an http.Handler with graceful shutdown.
//
//	cfg, err := server.LoadConfig() // SERVER_ADDR, SERVER_*_TIMEOUT, ...
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := server.Run(ctx, cfg, router, server.WithLogger(log)); err != nil {
//		log.Fatal(err)
//	}
//
// Run serves until ctx is canceled and then waits up to the shutdown timeout
// for in-flight requests, so handlers get to finish saving their sessions.
package server
