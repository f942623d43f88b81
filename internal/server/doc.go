// Package server provides the local HTTP server of KantanPro.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	│                    127.0.0.1:8000 by default                  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  RequestID  (X-Request-ID, uuid when absent)                  │
//	│  Logger     (ginzap, "http" logger, request_id field)         │
//	│  Recovery   (ginzap.RecoveryWithZap, stack traces)            │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  Handlers (registered via callback)                           │
//	├───────────────────────────────────────────────────────────────┤
//	│  prod + StaticsFolder: /static, /favicon.ico, SPA fallback    │
//	└───────────────────────────────────────────────────────────────┘
//
// The server always speaks plain HTTP and binds to the loopback address: it
// only serves the desktop UI of the same machine.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
//	        ...
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// # Static File Serving (Production Only)
//
//	/static/*     → StaticsFolder/static/
//	/             → StaticsFolder/index.html
//	/favicon.ico  → StaticsFolder/favicon.ico
//	/any/path     → StaticsFolder/index.html (SPA fallback)
//	/api/*        → 404 JSON error (if route not found)
package server
