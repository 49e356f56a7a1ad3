package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver records every executed query and returns canned results, one
// per call (the last result repeats once the queue is drained).
type MockDriver struct {
	Executed    []executedQuery
	ResultQueue []neo4j.EagerResult
	Err         error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.ResultQueue) == 0 {
		return neo4j.EagerResult{}, nil
	}
	result := m.ResultQueue[0]
	if len(m.ResultQueue) > 1 {
		m.ResultQueue = m.ResultQueue[1:]
	}
	return result, nil
}

func (m *MockDriver) BuildIndices(ctx context.Context, vectorDims int) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func (m *MockDriver) last() executedQuery {
	return m.Executed[len(m.Executed)-1]
}

func record(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}
