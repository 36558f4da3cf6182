package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Procedure() ProcedureRepository
	Query() QueryRepository

	Close() error
}
