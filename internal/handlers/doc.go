// Package handlers implements the HTTP API of KantanPro.
//
// Handlers parse path and query parameters, bind JSON bodies to the models
// and delegate to the services.Bridge. They hold no state of their own.
//
// # Architecture Overview
//
//	HTTP Request (Gin, /api/v1)
//	    │
//	    ▼
//	Handler (this package)
//	    - parameter parsing (id, limit, offset, status, dates, year/month)
//	    - error mapping to HTTP status codes
//	    │
//	    ▼
//	services.Bridge ──► store
//
// Routes are mounted with RegisterRoutes:
//
//	server.NewServer(cfg, handler.RegisterRoutes)
//
// # API Endpoints
//
//	┌────────────────┬──────────────────────────────┬──────────────────────────────┐
//	│ Method         │ Endpoint                     │ Description                  │
//	├────────────────┼──────────────────────────────┼──────────────────────────────┤
//	│ GET, POST      │ /clients                     │ List (limit, offset), create │
//	│ GET, PUT, DEL  │ /clients/:id                 │ Read, update, delete         │
//	│ GET, POST      │ /services, /suppliers        │ Same as clients              │
//	│ GET, PUT, DEL  │ /services/:id, /suppliers/:id│ Same as clients              │
//	│ GET, POST      │ /orders                      │ List (status filter), create │
//	│ GET, PUT, DEL  │ /orders/:id                  │ Read, update, cascade delete │
//	│ PATCH          │ /orders/:id/status           │ {"status": "完了"}           │
//	│ GET, POST      │ /orders/:id/items            │ Order items of an order      │
//	│ PUT, DEL       │ /order-items/:id             │ Update, delete an order item │
//	│ GET, POST      │ /orders/:id/costs            │ Cost items of an order       │
//	│ PUT, DEL       │ /cost-items/:id              │ Update, delete a cost item   │
//	│ GET, POST      │ /orders/:id/messages         │ Chat, newest first           │
//	│ GET            │ /reports/sales               │ ?start=&end= (YYYY-MM-DD)    │
//	│ GET            │ /reports/monthly             │ ?year=&month=                │
//	│ GET            │ /reports/tax                 │ ?start=&end=                 │
//	│ GET            │ /reports/top-clients         │ ?start=&end=&limit=          │
//	│ GET            │ /reports/dashboard           │ Counts and revenue           │
//	│ GET            │ /reports/{sales,monthly,tax}/export │ ?format=xlsx|csv&encoding=utf8|sjis │
//	│ GET, PUT       │ /settings                    │ All settings, bulk save      │
//	│ GET, PUT, DEL  │ /settings/:key               │ {"value": ...}               │
//	└────────────────┴──────────────────────────────┴──────────────────────────────┘
//
// Create calls answer 201 with {"id": n, "changes": 1}. Update and delete
// calls answer 200 with the same shape. Exports are sent as attachments.
//
// # Error Handling
//
//	{ "error": "error message" }
//
//	┌─────────────────────────────┬────────┬────────────────────────────────┐
//	│ Error Type                  │ Status │ When                           │
//	├─────────────────────────────┼────────┼────────────────────────────────┤
//	│ ValidationError             │ 400    │ Bad parameter or body field    │
//	│ ResourceNotFoundError       │ 404    │ Unknown id or setting key      │
//	│ ErrBridgeClosed             │ 503    │ Application shutting down      │
//	│ StorageError, anything else │ 500    │ Logged, generic message        │
//	└─────────────────────────────┴────────┴────────────────────────────────┘
package handlers
