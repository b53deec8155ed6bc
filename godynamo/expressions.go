package godynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// projection builds a projection expression selecting attrs. It returns nil
// when attrs is empty.
func projection(attrs []string) (*expression.Expression, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	names := make([]expression.NameBuilder, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, expression.Name(a))
	}
	proj := expression.NamesList(names[0], names[1:]...)

	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("expression.Build: %w", err)
	}
	return &expr, nil
}
