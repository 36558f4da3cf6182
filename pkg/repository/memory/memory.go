package memory

import (
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests
type Memory struct {
	procedure *procedureRepository
	query     *queryRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		procedure: newProcedureRepository(),
		query:     newQueryRepository(),
	}
}

func (m *Memory) Procedure() interfaces.ProcedureRepository {
	return m.procedure
}

func (m *Memory) Query() interfaces.QueryRepository {
	return m.query
}

func (m *Memory) Close() error {
	return nil
}
