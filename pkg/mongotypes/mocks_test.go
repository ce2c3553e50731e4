package mongotypes_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// MockModelLookup is a mock implementation of mongotypes.ModelLookup.
type MockModelLookup struct {
	mock.Mock
}

func (m *MockModelLookup) Lookup(name string) (*odm.Model, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*odm.Model), args.Error(1)
}
