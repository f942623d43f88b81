package store

// Client queries
var clientColumns = []string{
	"id",
	"name",
	"COALESCE(contact_person, '') AS contact_person",
	"COALESCE(email, '') AS email",
	"COALESCE(phone, '') AS phone",
	"COALESCE(address, '') AS address",
	"COALESCE(department, '') AS department",
	"created_at",
	"updated_at",
}

const (
	queryInsertClient = `
		INSERT INTO clients (name, contact_person, email, phone, address, department, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateClient = `
		UPDATE clients SET
			name = ?, contact_person = ?, email = ?, phone = ?, address = ?, department = ?,
			updated_at = ?
		WHERE id = ?`

	queryDetachClientOrders = `UPDATE orders SET client_id = NULL, updated_at = ? WHERE client_id = ?`

	queryDeleteClient = `DELETE FROM clients WHERE id = ?`
)

// Service queries
var serviceColumns = []string{
	"id",
	"name",
	"COALESCE(description, '') AS description",
	"COALESCE(unit_price, 0) AS unit_price",
	"COALESCE(unit, '') AS unit",
	"COALESCE(tax_rate, 0) AS tax_rate",
	"created_at",
	"updated_at",
}

const (
	queryInsertService = `
		INSERT INTO services (name, description, unit_price, unit, tax_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	queryUpdateService = `
		UPDATE services SET
			name = ?, description = ?, unit_price = ?, unit = ?, tax_rate = ?,
			updated_at = ?
		WHERE id = ?`

	queryDetachServiceItems = `UPDATE order_items SET service_id = NULL, updated_at = ? WHERE service_id = ?`

	queryDeleteService = `DELETE FROM services WHERE id = ?`
)

// Supplier queries
var supplierColumns = []string{
	"id",
	"name",
	"COALESCE(contact_person, '') AS contact_person",
	"COALESCE(email, '') AS email",
	"COALESCE(phone, '') AS phone",
	"COALESCE(address, '') AS address",
	"COALESCE(skills, '') AS skills",
	"COALESCE(qualified_invoice_number, '') AS qualified_invoice_number",
	"created_at",
	"updated_at",
}

const (
	queryInsertSupplier = `
		INSERT INTO suppliers (name, contact_person, email, phone, address, skills, qualified_invoice_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateSupplier = `
		UPDATE suppliers SET
			name = ?, contact_person = ?, email = ?, phone = ?, address = ?, skills = ?, qualified_invoice_number = ?,
			updated_at = ?
		WHERE id = ?`

	queryDetachSupplierCosts = `UPDATE cost_items SET supplier_id = NULL, updated_at = ? WHERE supplier_id = ?`

	queryDeleteSupplier = `DELETE FROM suppliers WHERE id = ?`
)

// Order queries
var orderColumns = []string{
	"o.id",
	"o.client_id",
	"o.project_name",
	"COALESCE(o.description, '') AS description",
	"COALESCE(o.status, '受注') AS status",
	"COALESCE(o.total_amount, 0) AS total_amount",
	"COALESCE(o.tax_amount, 0) AS tax_amount",
	"o.deadline",
	"o.completion_date",
	"o.created_at",
	"o.updated_at",
}

var orderWithClientColumns = append(append([]string{}, orderColumns...), "COALESCE(c.name, '') AS client_name")

const (
	queryGetCompletionDate = `SELECT completion_date FROM orders WHERE id = ?`

	queryInsertOrder = `
		INSERT INTO orders (client_id, project_name, description, status, total_amount, tax_amount, deadline, completion_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// completion_date is only replaced when the caller supplies one.
	queryUpdateOrder = `
		UPDATE orders SET
			client_id = ?, project_name = ?, description = ?, status = ?,
			total_amount = ?, tax_amount = ?, deadline = ?,
			completion_date = COALESCE(?, completion_date),
			updated_at = ?
		WHERE id = ?`

	queryUpdateOrderStatus = `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`

	queryCompleteOrder = `UPDATE orders SET status = ?, completion_date = ?, updated_at = ? WHERE id = ?`

	queryDeleteOrderItemsByOrder = `DELETE FROM order_items WHERE order_id = ?`

	queryDeleteCostItemsByOrder = `DELETE FROM cost_items WHERE order_id = ?`

	queryDeleteChatMessagesByOrder = `DELETE FROM chat_messages WHERE order_id = ?`

	queryDeleteOrder = `DELETE FROM orders WHERE id = ?`
)

// Order item queries
const (
	queryListOrderItems = `
		SELECT id, order_id, service_id,
			COALESCE(service_name, '') AS service_name,
			COALESCE(quantity, 0) AS quantity,
			COALESCE(unit_price, 0) AS unit_price,
			COALESCE(tax_rate, 0) AS tax_rate,
			COALESCE(amount, 0) AS amount,
			COALESCE(notes, '') AS notes,
			created_at,
			updated_at
		FROM order_items`

	queryGetServiceName = `SELECT name FROM services WHERE id = ?`

	queryInsertOrderItem = `
		INSERT INTO order_items (order_id, service_id, service_name, quantity, unit_price, tax_rate, amount, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateOrderItem = `
		UPDATE order_items SET
			service_id = ?, service_name = ?, quantity = ?, unit_price = ?, tax_rate = ?, amount = ?, notes = ?,
			updated_at = ?
		WHERE id = ?`

	queryDeleteOrderItem = `DELETE FROM order_items WHERE id = ?`
)

// Cost item queries
const (
	queryListCostItems = `
		SELECT id, order_id, supplier_id,
			COALESCE(supplier_name, '') AS supplier_name,
			COALESCE(item_name, '') AS item_name,
			COALESCE(quantity, 0) AS quantity,
			COALESCE(unit_price, 0) AS unit_price,
			COALESCE(tax_rate, 0) AS tax_rate,
			COALESCE(amount, 0) AS amount,
			COALESCE(notes, '') AS notes,
			COALESCE(qualified_invoice_number, '') AS qualified_invoice_number,
			created_at,
			updated_at
		FROM cost_items`

	queryGetSupplierSnapshot = `
		SELECT name, COALESCE(qualified_invoice_number, '') AS qualified_invoice_number
		FROM suppliers WHERE id = ?`

	queryInsertCostItem = `
		INSERT INTO cost_items (order_id, supplier_id, supplier_name, item_name, quantity, unit_price, tax_rate, amount, notes, qualified_invoice_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateCostItem = `
		UPDATE cost_items SET
			supplier_id = ?, supplier_name = ?, item_name = ?, quantity = ?, unit_price = ?, tax_rate = ?,
			amount = ?, notes = ?, qualified_invoice_number = ?,
			updated_at = ?
		WHERE id = ?`

	queryDeleteCostItem = `DELETE FROM cost_items WHERE id = ?`
)

// Chat queries
const (
	queryListChatMessages = `
		SELECT id, order_id, COALESCE(user_name, '') AS user_name, COALESCE(message, '') AS message, created_at
		FROM chat_messages
		WHERE order_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	queryInsertChatMessage = `
		INSERT INTO chat_messages (order_id, user_name, message, created_at)
		VALUES (?, ?, ?, ?)`
)

// Setting queries
const (
	queryGetSetting = `SELECT value FROM settings WHERE key = ?`

	queryListSettings = `SELECT key, value FROM settings ORDER BY key`

	queryUpsertSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	queryDeleteSetting = `DELETE FROM settings WHERE key = ?`
)

// Report queries
//
// Money columns have numeric affinity, so SUM adds floats. Sums are rounded
// to two places before they reach decimal.Decimal.
const (
	querySalesReport = `
		SELECT
			DATE(o.created_at) AS date,
			COALESCE(ROUND(SUM(o.total_amount), 2), 0) AS total_sales,
			COUNT(*) AS order_count
		FROM orders o
		WHERE o.status IN (?, ?)
		AND DATE(o.created_at) BETWEEN ? AND ?
		GROUP BY DATE(o.created_at)
		ORDER BY date DESC`

	queryMonthlyReport = `
		SELECT
			o.id,
			o.client_id,
			o.project_name,
			COALESCE(o.description, '') AS description,
			o.status,
			COALESCE(o.total_amount, 0) AS total_amount,
			COALESCE(o.tax_amount, 0) AS tax_amount,
			o.deadline,
			o.completion_date,
			o.created_at,
			o.updated_at,
			COALESCE(c.name, '') AS client_name,
			ROUND(SUM(oi.amount), 2) AS item_total
		FROM orders o
		LEFT JOIN clients c ON o.client_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		WHERE o.status IN (?, ?)
		AND DATE(o.completion_date) BETWEEN ? AND ?
		GROUP BY o.id
		ORDER BY o.completion_date DESC, o.id DESC`

	queryCountClients = `SELECT COUNT(*) FROM clients`

	queryCountOrdersByStatus = `
		SELECT COALESCE(status, '受注') AS status, COUNT(*) AS count
		FROM orders
		GROUP BY COALESCE(status, '受注')`

	queryRevenue = `
		SELECT COALESCE(ROUND(SUM(total_amount), 2), 0)
		FROM orders
		WHERE status IN (?, ?)`

	queryTaxSummary = `
		SELECT
			COALESCE(oi.tax_rate, 0) AS tax_rate,
			COALESCE(ROUND(SUM(oi.amount), 2), 0) AS subtotal,
			COUNT(*) AS items
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status IN (?, ?)
		AND DATE(o.created_at) BETWEEN ? AND ?
		GROUP BY COALESCE(oi.tax_rate, 0)
		ORDER BY tax_rate DESC`

	queryTopClients = `
		SELECT
			c.id AS client_id,
			c.name AS client_name,
			COALESCE(ROUND(SUM(o.total_amount), 2), 0) AS total_sales,
			COUNT(o.id) AS order_count
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status IN (?, ?)
		AND DATE(o.created_at) BETWEEN ? AND ?
		GROUP BY c.id, c.name
		ORDER BY total_sales DESC, c.id ASC
		LIMIT ?`
)
