package contextkeys

// Custom type so context values cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB (connection
// pool, or an open transaction in tests) is stored.
const DBContextKey = contextKey("db")
