package ports

// IDGenerator produces a fresh unique identifier on every call.
type IDGenerator interface {
	Next() string
}
