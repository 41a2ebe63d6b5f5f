package warehouse

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/tablewash/tablewash/internal/models"
)

// coerceCell converts a warehouse cell value into its string
// representation. Every value becomes a string; type information is
// deliberately not preserved.
func coerceCell(value bigquery.Value) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case *big.Rat:
		// NUMERIC values; Stringer would print "numerator/denominator".
		return v.FloatString(9)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// chunkSchema derives an all-STRING schema from the chunk headers, in
// header order.
func chunkSchema(headers []string) bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(headers))
	for _, name := range headers {
		schema = append(schema, &bigquery.FieldSchema{
			Name: name,
			Type: bigquery.StringFieldType,
		})
	}
	return schema
}

// encodeChunkCSV serializes a chunk's rows as CSV for a load job. Headers
// are carried by the schema, not the data, so no header row is written.
func encodeChunkCSV(chunk *models.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range chunk.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
