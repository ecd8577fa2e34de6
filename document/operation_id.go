package document

import "strings"

// OperationID returns op's operationId, or derives one from verb and route.
// The result is never empty.
//
// Example: get "/pets/{petId}" without operationId -> "get-pets-petId"
func OperationID(op *Operation, route string, verb Verb) string {
	if op != nil {
		if id := strings.TrimSpace(op.OperationID); id != "" {
			return id
		}
	}

	parts := []string{string(verb)}
	if verb == "" {
		parts[0] = "operation"
	}
	for _, seg := range strings.Split(route, "/") {
		seg = strings.Trim(seg, "{}")
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "-")
}
