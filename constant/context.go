package constant

type ContextKey string

const UserIDKey ContextKey = "user_id"

// DateLayout is the canonical day format used for dashboard summary keys.
const DateLayout = "2006-01-02"
