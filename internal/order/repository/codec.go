package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// serializeProductIDs encodes ids as a JSON array of numbers. A nil slice is
// stored as [] so the column never holds null.
func serializeProductIDs(ids []int64) datatypes.JSON {
	if len(ids) == 0 {
		return datatypes.JSON("[]")
	}
	raw, _ := json.Marshal(ids)
	return datatypes.JSON(raw)
}

func deserializeProductIDs(raw datatypes.JSON) ([]int64, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []int64{}, nil
	}
	ids := []int64{}
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		return nil, fmt.Errorf("decode order_products: %w", err)
	}
	return ids, nil
}
