package domain

type ctxKey string

// RequesterCtxKey carries the resolved requester identity through the
// request context when a valid bearer credential was presented.
const RequesterCtxKey ctxKey = "requester"

// Identity is the resolved acting user behind an optional bearer
// credential. Absence of an Identity means the request is anonymous.
type Identity struct {
	IDRole   int
	Username string
	Email    string
}

// User is a row of the platform user table, looked up when resolving an
// identity. The user table itself belongs to the surrounding platform.
type User struct {
	IDRole   int
	Username string
	Email    string
}
