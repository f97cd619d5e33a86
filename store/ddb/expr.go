/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/docstore/storemodels"
)

// buildFilterExpression renders an equality filter as a DynamoDB filter
// expression with attribute name and value placeholders. Keys are sorted so
// the expression is deterministic. An empty filter yields an empty expression.
func buildFilterExpression(filter storemodels.Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(filter) == 0 {
		return "", nil, nil, nil
	}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clauses := make([]string, 0, len(keys))
	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))

	for i, k := range keys {
		av, err := attributevalue.Marshal(filter[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal filter value for %q: %w", k, err)
		}
		nameRef := fmt.Sprintf("#n%d", i)
		valueRef := fmt.Sprintf(":v%d", i)
		names[nameRef] = k
		values[valueRef] = av
		clauses = append(clauses, fmt.Sprintf("%s = %s", nameRef, valueRef))
	}

	return strings.Join(clauses, " AND "), names, values, nil
}
