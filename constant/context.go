package constant

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	CompanyIDKey ContextKey = "company_id"
)
